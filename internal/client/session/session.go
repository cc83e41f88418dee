// Package session holds the authenticated state of a workspace client.
//
// A Session is acquired at sign-in, bound to an identity by the Guard,
// rotated whenever the transport refreshes tokens and invalidated at
// sign-out. It travels in the request context so lower layers never reach
// for global state.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
)

var (
	ErrNoSession   = errors.New("no session")
	ErrInvalidated = errors.New("session invalidated")
	ErrNoIdentity  = errors.New("no identity")
)

// Tokens is the access/refresh pair issued by the auth service.
type Tokens struct {
	Access  string
	Refresh string
}

// Session is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	tokens   Tokens
	identity *models.User
	invalid  bool
}

func New(access, refresh string) *Session {
	return &Session{tokens: Tokens{Access: access, Refresh: refresh}}
}

// Tokens returns the current pair or ErrInvalidated.
func (s *Session) Tokens() (Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.invalid {
		return Tokens{}, ErrInvalidated
	}
	return s.tokens, nil
}

// Rotate replaces the token pair. An invalidated session stays invalid.
func (s *Session) Rotate(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalid {
		return ErrInvalidated
	}
	s.tokens = Tokens{Access: access, Refresh: refresh}
	return nil
}

// Invalidate drops the tokens and the identity.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalid = true
	s.tokens = Tokens{}
	s.identity = nil
}

func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.invalid
}

// BindIdentity records the caller identity confirmed by the Guard.
func (s *Session) BindIdentity(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.invalid {
		return
	}
	s.identity = &u
}

// Identity returns the bound identity, if any.
func (s *Session) Identity() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.User{}, false
	}
	return *s.identity, true
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session stored by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
