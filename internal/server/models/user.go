// Package models defines server-side data models persisted in the database.
package models

import "time"

type User struct {
	ID                    string
	Email                 string
	PasswordHash          string
	ConfirmationTokenHash string
	ConfirmedAt           *time.Time
	CreatedAt             time.Time
}

// Confirmed reports whether the email address was verified.
func (u *User) Confirmed() bool {
	return u.ConfirmedAt != nil
}
