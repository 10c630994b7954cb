package employee

import "context"

// LeavePolicyProvider is the narrow profile view the payroll engine depends on.
type LeavePolicyProvider interface {
	// GetLeavePolicy returns the base salary and monthly paid-leave allowance
	// for an employee, or ErrProfileNotFound.
	GetLeavePolicy(ctx context.Context, employeeID string) (LeavePolicy, error)
}

type ProfileRepository interface {
	LeavePolicyProvider

	Create(ctx context.Context, profile Profile) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	UpdateContact(ctx context.Context, userID string, phone, department, position string) (Profile, error)

	// ListDirectory returns every employee-role user joined with their profile,
	// profile columns null when no profile exists yet.
	ListDirectory(ctx context.Context) ([]DirectoryEntry, error)
}
