package models

import "time"

// RefreshToken is a stored refresh token. Only the SHA-256 of the opaque
// token leaves the service layer.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	Expires   time.Time
	CreatedAt time.Time
}
