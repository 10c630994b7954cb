package reminder

import "time"

type Reminder struct {
	ID          string
	UserID      string
	Text        string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
