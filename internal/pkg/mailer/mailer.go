package mailer

import "context"

// Recipient identifies an email recipient
type Recipient struct {
	Email string
	Name  string
}

// Message is a templated send request
type Message struct {
	To       []Recipient
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer defines the transactional email provider capabilities the
// application depends on: single sends, bulk campaign sends, and
// contact-list maintenance.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	// SendBulk sends one message to many recipients and returns the
	// number of recipients handed to the provider.
	SendBulk(ctx context.Context, msg Message, to []Recipient) (int, error)
	UpsertContact(ctx context.Context, contact Recipient) error
	DeleteContact(ctx context.Context, email string) error
}
