package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
	ErrInvalidStatus   = errors.New("invalid attendance status")
	ErrRecordNotFound  = errors.New("attendance record not found")
)
