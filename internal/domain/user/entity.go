package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // HR admin - manages attendance, sees every employee
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if user holds the HR admin role
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsEmployee checks if user is a regular employee
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}
