package reminder

import "github.com/wellpay/wellpay-backend-go/internal/pkg/validator"

type CreateReminderRequest struct {
	Text string `json:"reminder_text"`
}

func (r *CreateReminderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "reminder_text",
			Message: "reminder_text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateReminderRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

type ReminderResponse struct {
	ID          string `json:"id"`
	Text        string `json:"reminder_text"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
