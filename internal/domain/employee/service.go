package employee

import "context"

type EmployeeService interface {
	// GetProfile returns the profile for a user, or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)

	// UpdateProfile lets an employee change their own contact fields. Salary
	// and leave allowance are HR-owned and stay untouched.
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)

	// CreateProfile provisions the employment record for an employee-role
	// user. One profile per user; a second attempt fails with ErrProfileExists.
	CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)

	// ListDirectory returns every employee with their profile data joined,
	// for the HR employee listing.
	ListDirectory(ctx context.Context) ([]DirectoryEntry, error)
}
