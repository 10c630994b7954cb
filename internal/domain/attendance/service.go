package attendance

import "context"

type AttendanceService interface {
	// Record appends one attendance row for the target employee. The ledger
	// is append-only; a second record for the same day is rejected with
	// ErrDuplicateRecord, never merged or overwritten.
	Record(ctx context.Context, employeeID string, req RecordAttendanceRequest) (RecordResponse, error)

	// Query returns an employee's records, optionally narrowed to one
	// calendar month.
	Query(ctx context.Context, employeeID string, req QueryAttendanceRequest) ([]RecordResponse, error)
}
