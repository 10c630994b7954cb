package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is a frozen monthly salary computation. Once generated for a
// (employee, month, year) period it is never recomputed, even if attendance
// data changes afterwards.
type Payslip struct {
	ID                    string
	EmployeeID            string
	Month                 int
	Year                  int
	BaseSalary            decimal.Decimal
	UnpaidLeaveDeductions decimal.Decimal
	FinalSalary           decimal.Decimal
	GeneratedAt           time.Time

	// Joined fields
	EmployeeName *string
}

// StressRecord is the monthly self-reported overtime and its derived severity
// score. Unlike a payslip it is mutable: a later submission for the same
// period overwrites it in place.
type StressRecord struct {
	ID             string
	EmployeeID     string
	Month          int
	Year           int
	OvertimeHours  int
	OvertimeReason *string
	StressLevel    int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}
