package dashboard

import "github.com/shopspring/decimal"

// HRDashboardResponse aggregates company-wide figures for the HR landing view.
type HRDashboardResponse struct {
	Statistics          Statistics           `json:"statistics"`
	RecentPayslips      []RecentPayslip      `json:"recent_payslips"`
	HighStressEmployees []HighStressEmployee `json:"high_stress_employees"`
}

type Statistics struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
	PresentDays            int64 `json:"present_days"`
	AttendanceRate         int64 `json:"attendance_rate"` // percentage, rounded
}

type RecentPayslip struct {
	ID           string          `json:"id"`
	EmployeeName string          `json:"employee_name"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	FinalSalary  decimal.Decimal `json:"final_salary"`
	GeneratedAt  string          `json:"generated_at"`
}

type HighStressEmployee struct {
	EmployeeName  string `json:"employee_name"`
	StressLevel   int    `json:"stress_level"`
	OvertimeHours int    `json:"overtime_hours"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
}
