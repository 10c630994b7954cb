package reminder

import "context"

type ReminderRepository interface {
	Create(ctx context.Context, rem Reminder) (Reminder, error)
	ListByUser(ctx context.Context, userID string) ([]Reminder, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (Reminder, error)
	Update(ctx context.Context, rem Reminder) (Reminder, error)
	Delete(ctx context.Context, id, userID string) error
}
