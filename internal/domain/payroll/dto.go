package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/validator"
)

type GeneratePayslipRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12 and year must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordOvertimeRequest struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	OvertimeHours  int     `json:"overtime_hours"`
	OvertimeReason *string `json:"overtime_reason,omitempty"`
}

func (r *RecordOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12 and year must be positive",
		})
	}

	if r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayslipResponse struct {
	ID                    string          `json:"id"`
	EmployeeID            string          `json:"employee_id"`
	Month                 int             `json:"month"`
	Year                  int             `json:"year"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	UnpaidLeaveDeductions decimal.Decimal `json:"unpaid_leave_deductions"`
	FinalSalary           decimal.Decimal `json:"final_salary"`
	GeneratedAt           string          `json:"generated_at"`
}

type StressRecordResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	OvertimeHours  int     `json:"overtime_hours"`
	OvertimeReason *string `json:"overtime_reason,omitempty"`
	StressLevel    int     `json:"stress_level"`
	CreatedAt      string  `json:"created_at"`
}

// StressDashboardResponse is the employee-facing stress summary.
type StressDashboardResponse struct {
	CurrentStressLevel int                    `json:"current_stress_level"`
	AverageStressLevel float64                `json:"average_stress_level"`
	StressHistory      []StressRecordResponse `json:"stress_history"`
}

// StressStatistics aggregates an employee's stress history for HR.
type StressStatistics struct {
	AverageStressLevel float64 `json:"average_stress_level"`
	MaxStressLevel     int     `json:"max_stress_level"`
	TotalOvertimeHours int     `json:"total_overtime_hours"`
	TotalRecords       int     `json:"total_records"`
}

type StressHistoryResponse struct {
	Statistics StressStatistics       `json:"statistics"`
	Records    []StressRecordResponse `json:"records"`
}
