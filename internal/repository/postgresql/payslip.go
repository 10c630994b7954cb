package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

// Insert implements payroll.PayslipRepository. uk_payslip_period serializes
// concurrent generation for the same (employee, month, year); the loser gets
// ErrPayslipExists and re-fetches the frozen record.
func (r *payslipRepository) Insert(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if payslip.ID == "" {
		payslip.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payslips (id, employee_id, payslip_month, payslip_year,
			base_salary, unpaid_leave_deductions, final_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING generated_at
	`

	err := q.QueryRow(ctx, query,
		payslip.ID, payslip.EmployeeID, payslip.Month, payslip.Year,
		payslip.BaseSalary, payslip.UnpaidLeaveDeductions, payslip.FinalSalary,
	).Scan(&payslip.GeneratedAt)
	if err != nil {
		if constraintName(err) == "uk_payslip_period" {
			return payroll.Payslip{}, payroll.ErrPayslipExists
		}
		return payroll.Payslip{}, fmt.Errorf("failed to insert payslip: %w", err)
	}

	return payslip, nil
}

// GetByEmployeeAndPeriod implements payroll.PayslipRepository.
func (r *payslipRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payslip_month, payslip_year,
			   base_salary, unpaid_leave_deductions, final_salary, generated_at
		FROM payslips
		WHERE employee_id = $1
		  AND payslip_month = $2
		  AND payslip_year = $3
	`

	var p payroll.Payslip
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year,
		&p.BaseSalary, &p.UnpaidLeaveDeductions, &p.FinalSalary, &p.GeneratedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

// ListByEmployee implements payroll.PayslipRepository.
func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payslip_month, payslip_year,
			   base_salary, unpaid_leave_deductions, final_salary, generated_at
		FROM payslips
		WHERE employee_id = $1
		ORDER BY payslip_year DESC, payslip_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year,
			&p.BaseSalary, &p.UnpaidLeaveDeductions, &p.FinalSalary, &p.GeneratedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}

// ListRecent implements payroll.PayslipRepository.
func (r *payslipRepository) ListRecent(ctx context.Context, limit int) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.payslip_month, p.payslip_year,
			   p.base_salary, p.unpaid_leave_deductions, p.final_salary, p.generated_at,
			   u.full_name
		FROM payslips p
		JOIN users u ON u.id = p.employee_id
		ORDER BY p.generated_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year,
			&p.BaseSalary, &p.UnpaidLeaveDeductions, &p.FinalSalary, &p.GeneratedAt,
			&p.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}
