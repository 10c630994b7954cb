package payroll

import "context"

type PayslipRepository interface {
	// Insert creates the payslip row; the (employee_id, month, year) unique
	// constraint serializes concurrent generation, surfaced as ErrPayslipExists.
	Insert(ctx context.Context, payslip Payslip) (Payslip, error)

	// GetByEmployeeAndPeriod returns the payslip for the natural key, or
	// ErrPayslipNotFound.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (Payslip, error)

	// ListByEmployee returns payslips ordered by (year, month) descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)

	// ListRecent returns the most recently generated payslips with employee
	// names joined, newest first.
	ListRecent(ctx context.Context, limit int) ([]Payslip, error)
}

type StressRecordRepository interface {
	// Upsert atomically inserts or overwrites the record for the natural key
	// (employee_id, month, year). Last write wins; no history is kept.
	Upsert(ctx context.Context, record StressRecord) (StressRecord, error)

	// GetByEmployeeAndPeriod returns the record for the natural key, or
	// ErrStressRecordNotFound.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (StressRecord, error)

	// ListByEmployee returns records ordered by (year, month) descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]StressRecord, error)

	// ListByMinLevel returns records with stress level above the threshold,
	// employee names joined, newest first.
	ListByMinLevel(ctx context.Context, minLevelExclusive int) ([]StressRecord, error)
}
