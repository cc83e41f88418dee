// Package common defines shared constants and sentinel errors used across
// client and server layers of Plain Theory. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. Messages are shown to the user verbatim.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidCredentials  = errors.New("Invalid login credentials")
	ErrEmailNotConfirmed   = errors.New("Email not confirmed")

	// Workspace errors.
	ErrNotApplied   = errors.New("operation did not apply")
	ErrFileTooLarge = errors.New("File size must be less than 10MB")
)
