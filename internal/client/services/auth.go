// Package services contains application services for the Plain Theory
// client. This file defines the authentication service: sign-up, email
// confirmation, sign-in guarded by an identity check, and sign-out.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/session"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
)

// ConfirmationHint is shown after a sign-up that still needs confirmation.
const ConfirmationHint = "Check your email for verification link!"

var ErrEmptyCredentials = errors.New("email and password are required")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp: create an account; confirmed reports whether sign-in is possible
//     right away.
//   - ConfirmEmail: redeem a confirmation token.
//   - SignIn: authenticate and run the session guard; the returned session is
//     bound to the caller identity.
//   - SignOut: revoke and invalidate the session.
//
// Auth failures carry the server message verbatim.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte) (confirmed bool, err error)
	ConfirmEmail(ctx context.Context, token string) error
	SignIn(ctx context.Context, email string, password []byte) (*session.Session, models.User, error)
	SignOut(ctx context.Context, s *session.Session) error
}

type authService struct {
	api   client.AuthAPI
	guard *session.Guard
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(api client.AuthAPI, log logging.Logger) AuthService {
	return &authService{api: api, guard: session.NewGuard(api, log), log: log.With("module", "auth")}
}

func (a *authService) SignUp(ctx context.Context, email string, password []byte) (bool, error) {
	if email == "" || len(password) == 0 {
		return false, ErrEmptyCredentials
	}
	return a.api.SignUp(ctx, email, string(password))
}

func (a *authService) ConfirmEmail(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrorValidation
	}
	return a.api.ConfirmEmail(ctx, token)
}

// SignIn returns ErrNoIdentity when the guard rejects a freshly issued
// session; that session is invalidated.
func (a *authService) SignIn(ctx context.Context, email string, password []byte) (*session.Session, models.User, error) {
	if email == "" || len(password) == 0 {
		return nil, models.User{}, ErrEmptyCredentials
	}

	sess, _, err := a.api.SignIn(ctx, email, string(password))
	if err != nil {
		return nil, models.User{}, err
	}

	u, err := a.guard.Check(ctx, sess)
	if err != nil {
		sess.Invalidate()
		return nil, models.User{}, err
	}

	a.log.Info(ctx, "signed in", "user_id", u.ID)
	return sess, u, nil
}

// SignOut invalidates s locally even when the server call fails.
func (a *authService) SignOut(ctx context.Context, s *session.Session) error {
	if s == nil {
		return nil
	}
	err := a.api.SignOut(session.WithSession(ctx, s))
	s.Invalidate()
	if err != nil {
		a.log.Warn(ctx, "sign out failed", "error", err)
	}
	return err
}
