// Package mail delivers account emails.
package mail

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/logging"
)

// Mailer sends the email-verification message for a new account.
type Mailer interface {
	SendConfirmation(ctx context.Context, email, token string) error
}

// LogMailer writes confirmation tokens to the log instead of sending mail.
// It is what the server ships with; operators relay the token by hand or
// run with auto-confirm.
type LogMailer struct {
	log logging.Logger
}

func NewLogMailer(log logging.Logger) *LogMailer {
	return &LogMailer{log: log.With("module", "mail")}
}

func (m *LogMailer) SendConfirmation(ctx context.Context, email, token string) error {
	m.log.Info(ctx, "confirmation issued", "email", email, "token", token)
	return nil
}
