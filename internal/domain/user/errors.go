package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrNotAnEmployee    = errors.New("user is not an employee")
	ErrHRAccessRequired = errors.New("hr role required")
)
