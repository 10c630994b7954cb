package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wellpay/wellpay-backend-go/internal/domain/reminder"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
)

type reminderRepository struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) reminder.ReminderRepository {
	return &reminderRepository{db: db}
}

// Create implements reminder.ReminderRepository.
func (r *reminderRepository) Create(ctx context.Context, rem reminder.Reminder) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	if rem.ID == "" {
		rem.ID = uuid.New().String()
	}

	query := `
		INSERT INTO reminders (id, user_id, reminder_text, is_completed)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rem.ID, rem.UserID, rem.Text, rem.IsCompleted).
		Scan(&rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to create reminder: %w", err)
	}

	return rem, nil
}

// ListByUser implements reminder.ReminderRepository.
func (r *reminderRepository) ListByUser(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, reminder_text, is_completed, created_at, updated_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []reminder.Reminder
	for rows.Next() {
		var rem reminder.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Text, &rem.IsCompleted, &rem.CreatedAt, &rem.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

// GetByIDAndUser implements reminder.ReminderRepository.
func (r *reminderRepository) GetByIDAndUser(ctx context.Context, id, userID string) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, reminder_text, is_completed, created_at, updated_at
		FROM reminders
		WHERE id = $1 AND user_id = $2
	`

	var rem reminder.Reminder
	err := q.QueryRow(ctx, query, id, userID).
		Scan(&rem.ID, &rem.UserID, &rem.Text, &rem.IsCompleted, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reminder.Reminder{}, reminder.ErrReminderNotFound
		}
		return reminder.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return rem, nil
}

// Update implements reminder.ReminderRepository.
func (r *reminderRepository) Update(ctx context.Context, rem reminder.Reminder) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reminders
		SET reminder_text = $3, is_completed = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rem.ID, rem.UserID, rem.Text, rem.IsCompleted).
		Scan(&rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return reminder.Reminder{}, reminder.ErrReminderNotFound
		}
		return reminder.Reminder{}, fmt.Errorf("failed to update reminder: %w", err)
	}

	return rem, nil
}

// Delete implements reminder.ReminderRepository.
func (r *reminderRepository) Delete(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderNotFound
	}

	return nil
}
