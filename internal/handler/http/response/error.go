package response

import (
	"errors"
	"net/http"

	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/domain/auth"
	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	"github.com/wellpay/wellpay-backend-go/internal/domain/payroll"
	"github.com/wellpay/wellpay-backend-go/internal/domain/reminder"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUsernameTaken):
		Conflict(w, "Username already exists")
	case errors.Is(err, auth.ErrEmailTaken):
		Conflict(w, "Email already exists")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrNotAnEmployee):
		BadRequest(w, "User is not an employee", nil)
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR role required")

	// Employee domain errors
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")
	case errors.Is(err, employee.ErrProfileExists):
		Conflict(w, "Employee profile already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipExists):
		Conflict(w, "Payslip already exists for this period")
	case errors.Is(err, payroll.ErrStressRecordNotFound):
		NotFound(w, "Stress record not found")

	// Reminder domain errors
	case errors.Is(err, reminder.ErrReminderNotFound):
		NotFound(w, "Reminder not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
