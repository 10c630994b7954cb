package attendance

import (
	"context"
	"time"
)

// LeaveCounter is the narrow ledger view the leave accountant reads from.
type LeaveCounter interface {
	// CountLeaveDays counts records in [start, end] whose status is
	// PAID_LEAVE or UNPAID_LEAVE.
	CountLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int, error)
}

// AttendanceRepository persists the append-only ledger. No update, no delete.
type AttendanceRepository interface {
	LeaveCounter

	// Create inserts one row; the (employee_id, date) unique constraint
	// resolves concurrent duplicates, surfaced as ErrDuplicateRecord.
	Create(ctx context.Context, record Record) (Record, error)

	// ListByEmployeeAndRange returns records in [start, end] ascending by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// ListByEmployee returns all records for an employee ascending by date.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// CountByPeriod counts all records dated inside [start, end], any employee.
	CountByPeriod(ctx context.Context, start, end time.Time) (int64, error)

	// CountByStatusAndPeriod counts records with the given status inside [start, end].
	CountByStatusAndPeriod(ctx context.Context, status Status, start, end time.Time) (int64, error)
}
