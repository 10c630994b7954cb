package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile holds the HR-maintained employment data for a user.
type Profile struct {
	ID                 string
	UserID             string
	Phone              string
	Department         string
	Position           string
	BaseSalary         decimal.Decimal
	PaidLeavesPerMonth int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LeavePolicy is the slice of the profile the payroll engine consumes.
// BaseSalary is copied by value into generated payslips, so later salary
// changes never touch frozen records.
type LeavePolicy struct {
	BaseSalary         decimal.Decimal
	PaidLeavesPerMonth int
}

// LeavePolicy returns the payroll-relevant view of the profile.
func (p Profile) LeavePolicy() LeavePolicy {
	return LeavePolicy{
		BaseSalary:         p.BaseSalary,
		PaidLeavesPerMonth: p.PaidLeavesPerMonth,
	}
}
