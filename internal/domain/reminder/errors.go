package reminder

import "errors"

var ErrReminderNotFound = errors.New("reminder not found")
