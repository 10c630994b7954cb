package employee

import (
	"github.com/shopspring/decimal"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateProfileRequest struct {
	UserID             string          `json:"user_id"`
	Phone              string          `json:"phone"`
	Department         string          `json:"department"`
	Position           string          `json:"position"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	PaidLeavesPerMonth int             `json:"paid_leaves_per_month"`
}

func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.PaidLeavesPerMonth < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "paid_leaves_per_month",
			Message: "paid_leaves_per_month must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	UserID             string          `json:"user_id"`
	Phone              string          `json:"phone"`
	Department         string          `json:"department"`
	Position           string          `json:"position"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	PaidLeavesPerMonth int             `json:"paid_leaves_per_month"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// DirectoryEntry is one row of the HR employee listing (user joined to profile).
type DirectoryEntry struct {
	ID         string           `json:"id"`
	Username   string           `json:"username"`
	Email      string           `json:"email"`
	FullName   string           `json:"full_name"`
	Phone      *string          `json:"phone"`
	Department *string          `json:"department"`
	Position   *string          `json:"position"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	CreatedAt  string           `json:"created_at"`
}
