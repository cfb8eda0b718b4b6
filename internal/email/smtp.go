package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
)

// SMTPDispatcher sends messages via a single pre-configured SMTP endpoint.
//
// The zero retry policy is deliberate: a failed send is a terminal outcome
// for that message and the caller decides what to surface to the client.
type SMTPDispatcher struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPDispatcher creates a new SMTP-backed dispatcher.
func NewSMTPDispatcher(config SMTPConfig, logger *slog.Logger) *SMTPDispatcher {
	if config.From == "" {
		config.From = DefaultFromEmail
	}
	if config.FromName == "" {
		config.FromName = DefaultFromName
	}
	return &SMTPDispatcher{
		config: config,
		logger: logger,
	}
}

// Send delivers a single message. Transport failures are logged and returned;
// they are never wrapped into panics and nothing is retried.
func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw := d.buildMessage(msg)
	addr := fmt.Sprintf("%s:%d", d.config.Host, d.config.Port)

	var auth smtp.Auth
	if d.config.Username != "" && d.config.Password != "" {
		auth = smtp.PlainAuth("", d.config.Username, d.config.Password, d.config.Host)
	}

	if err := smtp.SendMail(addr, auth, d.config.From, []string{msg.To}, raw); err != nil {
		d.logger.Error("failed to send email",
			"to", msg.To,
			"subject", msg.Subject,
			"attachments", len(msg.Attachments),
			"error", err,
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	d.logger.Info("email sent",
		"to", msg.To,
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)
	return nil
}

const (
	altBoundary   = "===============BATIHR_ALT==============="
	mixedBoundary = "===============BATIHR_MIXED==============="
)

// buildMessage constructs the raw RFC 5322 message. Messages without
// attachments are multipart/alternative (text + HTML); messages with
// attachments wrap that in multipart/mixed with base64-encoded file parts.
func (d *SMTPDispatcher) buildMessage(msg Message) []byte {
	var buf bytes.Buffer

	fromHeader := fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", d.config.FromName), d.config.From)
	buf.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		buf.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", altBoundary))
		buf.WriteString("\r\n")
		writeBodyParts(&buf, altBoundary, msg)
		buf.WriteString(fmt.Sprintf("--%s--\r\n", altBoundary))
		return buf.Bytes()
	}

	buf.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", mixedBoundary))
	buf.WriteString("\r\n")

	// Body as a nested multipart/alternative part
	buf.WriteString(fmt.Sprintf("--%s\r\n", mixedBoundary))
	buf.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", altBoundary))
	buf.WriteString("\r\n")
	writeBodyParts(&buf, altBoundary, msg)
	buf.WriteString(fmt.Sprintf("--%s--\r\n", altBoundary))

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		buf.WriteString(fmt.Sprintf("--%s\r\n", mixedBoundary))
		buf.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", contentType, att.Filename))
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		buf.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", att.Filename))
		buf.WriteString("\r\n")
		writeBase64(&buf, att.Content)
		buf.WriteString("\r\n")
	}

	buf.WriteString(fmt.Sprintf("--%s--\r\n", mixedBoundary))
	return buf.Bytes()
}

// writeBodyParts writes the plain-text and HTML alternatives.
func writeBodyParts(buf *bytes.Buffer, boundary string, msg Message) {
	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.TextBody)
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTMLBody)
	buf.WriteString("\r\n")
}

// writeBase64 writes content in base64 with 76-character lines per RFC 2045.
func writeBase64(buf *bytes.Buffer, content []byte) {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	if len(encoded) > 0 {
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
}

var _ Dispatcher = (*SMTPDispatcher)(nil)
