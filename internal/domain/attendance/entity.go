package attendance

import "time"

type Status string

const (
	StatusPresent     Status = "PRESENT"
	StatusPaidLeave   Status = "PAID_LEAVE"
	StatusUnpaidLeave Status = "UNPAID_LEAVE"
)

// IsValid reports whether s is one of the known attendance statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusPaidLeave, StatusUnpaidLeave:
		return true
	}
	return false
}

// IsLeave reports whether the status consumes the monthly leave allowance.
// Both leave labels count; the paid/unpaid tag on an individual day is
// informational only.
func (s Status) IsLeave() bool {
	return s == StatusPaidLeave || s == StatusUnpaidLeave
}

// Record is one immutable per-employee, per-day attendance row.
// There is never more than one record per (employee, date).
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
}
