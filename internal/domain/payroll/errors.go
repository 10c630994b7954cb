package payroll

import "errors"

var (
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipExists        = errors.New("payslip already exists for this period")
	ErrStressRecordNotFound = errors.New("stress record not found")

	// ErrInvalidStressLevel marks a computed score outside [1,10]. The formula
	// cannot produce one; seeing this error means a logic defect, so it fails
	// loudly instead of being clamped away.
	ErrInvalidStressLevel = errors.New("computed stress level outside valid range")
)
