package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The uk_attendance_day
// unique constraint is the duplicate check; concurrent inserts for the same
// (employee, date) cannot both succeed.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.Status,
	).Scan(&record.CreatedAt)
	if err != nil {
		if constraintName(err) == "uk_attendance_day" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountLeaveDays implements attendance.LeaveCounter. Both leave labels count
// toward the allowance; the query must never filter on UNPAID_LEAVE alone.
func (r *attendanceRepository) CountLeaveDays(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND status IN ($4, $5)
	`

	var count int
	err := q.QueryRow(ctx, query, employeeID, start, end,
		attendance.StatusPaidLeave, attendance.StatusUnpaidLeave,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave days: %w", err)
	}

	return count, nil
}

// CountByPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date BETWEEN $1 AND $2`,
		start, end,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return count, nil
}

// CountByStatusAndPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatusAndPeriod(ctx context.Context, status attendance.Status, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE status = $1 AND date BETWEEN $2 AND $3`,
		status, start, end,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records by status: %w", err)
	}
	return count, nil
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
