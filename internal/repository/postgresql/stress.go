package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
)

type stressRecordRepository struct {
	db *database.DB
}

func NewStressRecordRepository(db *database.DB) payroll.StressRecordRepository {
	return &stressRecordRepository{db: db}
}

// Upsert implements payroll.StressRecordRepository. ON CONFLICT on the
// natural key makes the read-check-then-write a single atomic statement, so
// two concurrent submissions for the same period cannot lose an update.
func (r *stressRecordRepository) Upsert(ctx context.Context, record payroll.StressRecord) (payroll.StressRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO stress_records (id, employee_id, record_month, record_year,
			overtime_hours, overtime_reason, stress_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT uk_stress_period DO UPDATE
		SET overtime_hours = EXCLUDED.overtime_hours,
			overtime_reason = EXCLUDED.overtime_reason,
			stress_level = EXCLUDED.stress_level,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Year,
		record.OvertimeHours, record.OvertimeReason, record.StressLevel,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return payroll.StressRecord{}, fmt.Errorf("failed to upsert stress record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndPeriod implements payroll.StressRecordRepository.
func (r *stressRecordRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (payroll.StressRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, record_month, record_year,
			   overtime_hours, overtime_reason, stress_level, created_at, updated_at
		FROM stress_records
		WHERE employee_id = $1
		  AND record_month = $2
		  AND record_year = $3
	`

	var rec payroll.StressRecord
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.OvertimeHours, &rec.OvertimeReason, &rec.StressLevel, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.StressRecord{}, payroll.ErrStressRecordNotFound
		}
		return payroll.StressRecord{}, fmt.Errorf("failed to get stress record: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements payroll.StressRecordRepository.
func (r *stressRecordRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.StressRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, record_month, record_year,
			   overtime_hours, overtime_reason, stress_level, created_at, updated_at
		FROM stress_records
		WHERE employee_id = $1
		ORDER BY record_year DESC, record_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stress records: %w", err)
	}
	defer rows.Close()

	var records []payroll.StressRecord
	for rows.Next() {
		var rec payroll.StressRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
			&rec.OvertimeHours, &rec.OvertimeReason, &rec.StressLevel, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stress record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByMinLevel implements payroll.StressRecordRepository.
func (r *stressRecordRepository) ListByMinLevel(ctx context.Context, minLevelExclusive int) ([]payroll.StressRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.record_month, s.record_year,
			   s.overtime_hours, s.overtime_reason, s.stress_level, s.created_at, s.updated_at,
			   u.full_name
		FROM stress_records s
		JOIN users u ON u.id = s.employee_id
		WHERE s.stress_level > $1
		ORDER BY s.created_at DESC
	`

	rows, err := q.Query(ctx, query, minLevelExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list high stress records: %w", err)
	}
	defer rows.Close()

	var records []payroll.StressRecord
	for rows.Next() {
		var rec payroll.StressRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
			&rec.OvertimeHours, &rec.OvertimeReason, &rec.StressLevel, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stress record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
