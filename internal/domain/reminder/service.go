package reminder

import "context"

type ReminderService interface {
	Create(ctx context.Context, userID string, req CreateReminderRequest) (ReminderResponse, error)
	List(ctx context.Context, userID string) ([]ReminderResponse, error)
	Update(ctx context.Context, userID, reminderID string, req UpdateReminderRequest) (ReminderResponse, error)
	Delete(ctx context.Context, userID, reminderID string) error
}
