// Package email provides outbound transactional email for the BATIHR+
// backend.
//
// This package defines a Dispatcher interface with an SMTP implementation
// that works with Mailhog in development and any authenticated SMTP relay in
// production.
package email

import (
	"context"
)

// Dispatcher sends a fully composed message. Implementations hold one
// pre-configured transport for the process lifetime and are safe for
// concurrent use; each Send is fire-once with no retry.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a fully rendered email handed to the Dispatcher. It is
// constructed fresh per send and discarded after dispatch.
type Message struct {
	To          string       // Recipient email address
	Subject     string       // Subject line
	HTMLBody    string       // HTML content
	TextBody    string       // Plain text fallback
	Attachments []Attachment // Optional file attachments
}

// Attachment is a file carried inside a Message.
type Attachment struct {
	Filename    string // Name shown to the recipient
	ContentType string // MIME type; defaults to application/octet-stream
	Content     []byte
}

// SMTPConfig holds SMTP server configuration.
type SMTPConfig struct {
	Host     string // SMTP server hostname (e.g., "localhost" for Mailhog)
	Port     int    // SMTP server port (e.g., 1025 for Mailhog)
	Username string // SMTP authentication username (empty for Mailhog)
	Password string // SMTP authentication password (empty for Mailhog)
	From     string // Sender email address
	FromName string // Sender display name
}

const (
	// DefaultFromEmail is the fallback sender address.
	DefaultFromEmail = "noreply@batihr.fr"

	// DefaultFromName is the fallback sender display name.
	DefaultFromName = "BATIHR +"
)
