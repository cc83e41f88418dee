package models

import "time"

// Note is a titled text body owned by exactly one user.
type Note struct {
	ID        string
	OwnerID   string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
