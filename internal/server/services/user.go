// Package services contains the server-side business logic. This file
// implements UserService: accounts, sign-in, token rotation and the identity
// lookup behind GetUser.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/cryptox"
	"github.com/dmitrijs2005/plaintheory/internal/dbx"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/auth"
	"github.com/dmitrijs2005/plaintheory/internal/server/config"
	mailer "github.com/dmitrijs2005/plaintheory/internal/server/mail"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/repomanager"
)

const MinPasswordLength = 6

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	mailer                       mailer.Mailer
	identities                   *IdentityCache
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	autoConfirm                  bool
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, ml mailer.Mailer, log logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		mailer:                       ml,
		identities:                   NewIdentityCache(cfg.IdentityCacheSize, cfg.IdentityCacheTTL),
		log:                          log.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		autoConfirm:                  cfg.AutoConfirm,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	return email, nil
}

// SignUp registers an account. Unless auto-confirm is on, the account stays
// unconfirmed until ConfirmEmail is called with the mailed token.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinPasswordLength)
	}

	hash, err := cryptox.HashPassword([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: email, PasswordHash: hash}

	var token string
	if s.autoConfirm {
		now := time.Now()
		user.ConfirmedAt = &now
	} else {
		token, err = common.MakeRandHexString(32)
		if err != nil {
			return nil, common.ErrorInternal
		}
		user.ConfirmationTokenHash = cryptox.HashToken(token)
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if token != "" {
		if err := s.mailer.SendConfirmation(ctx, u.Email, token); err != nil {
			// the account exists; the user can ask for help confirming it
			s.log.Warn(ctx, "confirmation not sent", "user_id", u.ID, "error", err)
		}
	}
	return u, nil
}

func (s *UserService) ConfirmEmail(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty confirmation token", common.ErrorValidation)
	}
	u, err := s.repomanager.Users(s.db).Confirm(ctx, cryptox.HashToken(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error confirming user: %w", err)
	}
	s.identities.Delete(u.ID)
	return u, nil
}

// SignIn checks the credentials and mints a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, common.ErrorInternal
	}
	if !cryptox.CheckPassword(user.PasswordHash, []byte(password)) {
		return nil, nil, common.ErrInvalidCredentials
	}
	if !user.Confirmed() {
		return nil, nil, common.ErrEmailNotConfirmed
	}

	pair, err := s.generateTokenPair(ctx, user.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	s.identities.Set(user)
	return pair, user, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired. A
// token consumed by a concurrent refresh yields ErrInvalidToken.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	hash := cryptox.HashToken(refreshToken)

	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, hash); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// SignOut revokes refreshToken, or every refresh token of userID when it is
// empty. Revoking an unknown token is not an error.
func (s *UserService) SignOut(ctx context.Context, userID, refreshToken string) error {
	defer s.identities.Delete(userID)

	repo := s.repomanager.RefreshTokens(s.db)
	if refreshToken == "" {
		n, err := repo.DeleteForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("error revoking refresh tokens: %w", err)
		}
		s.log.Debug(ctx, "refresh tokens revoked", "user_id", userID, "count", n)
		return nil
	}

	hash := cryptox.HashToken(refreshToken)
	token, err := repo.Find(ctx, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.UserID != userID {
		return common.ErrorForbidden
	}
	if err := repo.Delete(ctx, hash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// GetUser resolves the caller's identity, served from the cache when fresh.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if u, ok := s.identities.Get(userID); ok {
		return u, nil
	}
	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	s.identities.Set(u)
	return u, nil
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, cryptox.HashToken(refresh), s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
