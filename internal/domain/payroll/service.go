package payroll

import "context"

type PayrollService interface {
	// GeneratePayslip returns the existing payslip for the period if one was
	// ever generated, otherwise computes, persists, and returns a new one.
	GeneratePayslip(ctx context.Context, employeeID string, req GeneratePayslipRequest) (PayslipResponse, error)

	// ListPayslips returns the employee's payslips, newest period first.
	ListPayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error)

	// RecordOvertime scores the reported overtime and inserts or overwrites
	// the stress record for the period.
	RecordOvertime(ctx context.Context, employeeID string, req RecordOvertimeRequest) (StressRecordResponse, error)

	// ListStressRecords returns the employee's stress records, newest period first.
	ListStressRecords(ctx context.Context, employeeID string) ([]StressRecordResponse, error)

	// StressDashboard summarizes the employee's own stress history.
	StressDashboard(ctx context.Context, employeeID string) (StressDashboardResponse, error)

	// StressHistory returns records plus aggregate statistics, for HR review.
	StressHistory(ctx context.Context, employeeID string) (StressHistoryResponse, error)
}
