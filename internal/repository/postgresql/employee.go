package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepository{db: db}
}

// Create implements employee.ProfileRepository.
func (r *profileRepository) Create(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employee_profiles (id, user_id, phone, department, position, base_salary, paid_leaves_per_month)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.ID, profile.UserID, profile.Phone, profile.Department, profile.Position,
		profile.BaseSalary, profile.PaidLeavesPerMonth,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if constraintName(err) == "uk_profile_user" {
			return employee.Profile{}, employee.ErrProfileExists
		}
		return employee.Profile{}, fmt.Errorf("failed to create employee profile: %w", err)
	}

	return profile, nil
}

// GetByUserID implements employee.ProfileRepository.
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, phone, department, position, base_salary, paid_leaves_per_month,
			   created_at, updated_at
		FROM employee_profiles
		WHERE user_id = $1
	`

	var p employee.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Phone, &p.Department, &p.Position,
		&p.BaseSalary, &p.PaidLeavesPerMonth, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return p, nil
}

// GetLeavePolicy implements employee.LeavePolicyProvider.
func (r *profileRepository) GetLeavePolicy(ctx context.Context, employeeID string) (employee.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT base_salary, paid_leaves_per_month
		FROM employee_profiles
		WHERE user_id = $1
	`

	var policy employee.LeavePolicy
	err := q.QueryRow(ctx, query, employeeID).Scan(&policy.BaseSalary, &policy.PaidLeavesPerMonth)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.LeavePolicy{}, employee.ErrProfileNotFound
		}
		return employee.LeavePolicy{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	return policy, nil
}

// UpdateContact implements employee.ProfileRepository.
func (r *profileRepository) UpdateContact(ctx context.Context, userID string, phone, department, position string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_profiles
		SET phone = $2, department = $3, position = $4, updated_at = NOW()
		WHERE user_id = $1
		RETURNING id, user_id, phone, department, position, base_salary, paid_leaves_per_month,
			created_at, updated_at
	`

	var p employee.Profile
	err := q.QueryRow(ctx, query, userID, phone, department, position).Scan(
		&p.ID, &p.UserID, &p.Phone, &p.Department, &p.Position,
		&p.BaseSalary, &p.PaidLeavesPerMonth, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to update employee profile: %w", err)
	}

	return p, nil
}

// ListDirectory implements employee.ProfileRepository.
func (r *profileRepository) ListDirectory(ctx context.Context) ([]employee.DirectoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.email, u.full_name,
			   p.phone, p.department, p.position, p.base_salary,
			   u.created_at
		FROM users u
		LEFT JOIN employee_profiles p ON p.user_id = u.id
		WHERE u.role = $1
		ORDER BY u.created_at
	`

	rows, err := q.Query(ctx, query, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee directory: %w", err)
	}
	defer rows.Close()

	var entries []employee.DirectoryEntry
	for rows.Next() {
		var e employee.DirectoryEntry
		var createdAt time.Time
		if err := rows.Scan(
			&e.ID, &e.Username, &e.Email, &e.FullName,
			&e.Phone, &e.Department, &e.Position, &e.BaseSalary,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan directory entry: %w", err)
		}
		e.CreatedAt = createdAt.Format("2006-01-02 15:04:05")
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
