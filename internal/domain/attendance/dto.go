package attendance

import "github.com/wellpay/wellpay-backend-go/internal/pkg/validator"

type RecordAttendanceRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{
		string(StatusPresent), string(StatusPaidLeave), string(StatusUnpaidLeave),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, PAID_LEAVE, UNPAID_LEAVE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type QueryAttendanceRequest struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (r *QueryAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	// Month and year filter together or not at all.
	if (r.Month == nil) != (r.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if r.Month != nil && r.Year != nil && !validator.IsValidPeriod(*r.Month, *r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12 and year must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}
