package reminder

import (
	"context"
	"fmt"

	"github.com/wellpay/wellpay-backend-go/internal/domain/reminder"
)

type ReminderServiceImpl struct {
	reminderRepo reminder.ReminderRepository
}

func NewReminderService(reminderRepo reminder.ReminderRepository) reminder.ReminderService {
	return &ReminderServiceImpl{reminderRepo: reminderRepo}
}

// Create implements reminder.ReminderService.
func (s *ReminderServiceImpl) Create(ctx context.Context, userID string, req reminder.CreateReminderRequest) (reminder.ReminderResponse, error) {
	if err := req.Validate(); err != nil {
		return reminder.ReminderResponse{}, err
	}

	created, err := s.reminderRepo.Create(ctx, reminder.Reminder{
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		return reminder.ReminderResponse{}, fmt.Errorf("failed to create reminder: %w", err)
	}
	return toReminderResponse(created), nil
}

// List implements reminder.ReminderService.
func (s *ReminderServiceImpl) List(ctx context.Context, userID string) ([]reminder.ReminderResponse, error) {
	reminders, err := s.reminderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	responses := make([]reminder.ReminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		responses = append(responses, toReminderResponse(rem))
	}
	return responses, nil
}

// Update implements reminder.ReminderService. Ownership is enforced by the
// (id, user) lookup; another user's reminder reads as not found.
func (s *ReminderServiceImpl) Update(ctx context.Context, userID, reminderID string, req reminder.UpdateReminderRequest) (reminder.ReminderResponse, error) {
	rem, err := s.reminderRepo.GetByIDAndUser(ctx, reminderID, userID)
	if err != nil {
		return reminder.ReminderResponse{}, err
	}

	if req.IsCompleted != nil {
		rem.IsCompleted = *req.IsCompleted
	}

	updated, err := s.reminderRepo.Update(ctx, rem)
	if err != nil {
		return reminder.ReminderResponse{}, fmt.Errorf("failed to update reminder: %w", err)
	}
	return toReminderResponse(updated), nil
}

// Delete implements reminder.ReminderService.
func (s *ReminderServiceImpl) Delete(ctx context.Context, userID, reminderID string) error {
	return s.reminderRepo.Delete(ctx, reminderID, userID)
}

func toReminderResponse(rem reminder.Reminder) reminder.ReminderResponse {
	return reminder.ReminderResponse{
		ID:          rem.ID,
		Text:        rem.Text,
		IsCompleted: rem.IsCompleted,
		CreatedAt:   rem.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   rem.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
