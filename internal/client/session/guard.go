package session

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
)

// IdentityProvider asks the auth service who the current caller is.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Guard gates entry to the workspace.
type Guard struct {
	auth IdentityProvider
	log  logging.Logger
}

func NewGuard(auth IdentityProvider, log logging.Logger) *Guard {
	return &Guard{auth: auth, log: log.With("module", "guard")}
}

// Check resolves the identity behind s and binds it. Every failure,
// including a missing or invalidated session, is reported as ErrNoIdentity
// and is not retried.
func (g *Guard) Check(ctx context.Context, s *Session) (models.User, error) {
	if s == nil || !s.Valid() {
		return models.User{}, ErrNoIdentity
	}

	u, err := g.auth.CurrentUser(WithSession(ctx, s))
	if err != nil {
		g.log.Debug(ctx, "identity check failed", "error", err)
		return models.User{}, ErrNoIdentity
	}
	if u == nil || u.ID == "" {
		return models.User{}, ErrNoIdentity
	}

	s.BindIdentity(*u)
	return *u, nil
}
