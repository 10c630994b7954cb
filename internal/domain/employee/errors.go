package employee

import "errors"

var (
	ErrProfileNotFound = errors.New("employee profile not found")
	ErrProfileExists   = errors.New("employee profile already exists for this user")
)
