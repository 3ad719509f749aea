package mailer

import (
	"context"

	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// ConsoleMailer logs messages instead of sending them. Used in
// development when no provider credentials are configured.
type ConsoleMailer struct{}

// NewConsoleMailer creates a logging-only mailer.
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

var _ Mailer = (*ConsoleMailer)(nil)

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.SendBulk(ctx, msg, msg.To)
	return err
}

func (m *ConsoleMailer) SendBulk(ctx context.Context, msg Message, to []Recipient) (int, error) {
	for _, r := range to {
		logger.Info().
			Str("to", r.Email).
			Str("subject", msg.Subject).
			Msg("Console mailer: message not sent (no provider configured)")
	}
	return len(to), nil
}

func (m *ConsoleMailer) UpsertContact(ctx context.Context, contact Recipient) error {
	logger.Info().Str("email", contact.Email).Msg("Console mailer: contact upsert skipped")
	return nil
}

func (m *ConsoleMailer) DeleteContact(ctx context.Context, email string) error {
	logger.Info().Str("email", email).Msg("Console mailer: contact delete skipped")
	return nil
}
