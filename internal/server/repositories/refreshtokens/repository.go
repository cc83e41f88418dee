// Package refreshtokens declares the server-side repository contract for
// refresh tokens. Tokens are addressed by their SHA-256 hash only.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, tokenHash string, validity time.Duration) error

	// Find looks up a refresh token by hash. A missing token is common.ErrorNotFound.
	Find(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// Delete removes a refresh token by hash. A token that is already gone
	// is common.ErrorNotFound.
	Delete(ctx context.Context, tokenHash string) error

	// DeleteForUser revokes every refresh token of userID and returns how many were removed.
	DeleteForUser(ctx context.Context, userID string) (int64, error)
}
