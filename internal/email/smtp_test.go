package email

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDispatcher() *SMTPDispatcher {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewSMTPDispatcher(SMTPConfig{
		Host:     "localhost",
		Port:     1025,
		From:     "noreply@batihr.fr",
		FromName: "BATIHR +",
	}, logger)
}

func TestBuildMessage_WithoutAttachments(t *testing.T) {
	d := testDispatcher()

	raw := string(d.buildMessage(Message{
		To:       "jean@example.com",
		Subject:  "Confirmation",
		HTMLBody: "<p>Bonjour</p>",
		TextBody: "Bonjour",
	}))

	assert.Contains(t, raw, "To: jean@example.com\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0\r\n")
	assert.Contains(t, raw, "Content-Type: multipart/alternative")
	assert.NotContains(t, raw, "multipart/mixed")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=utf-8")
	assert.Contains(t, raw, "Content-Type: text/html; charset=utf-8")
	assert.Contains(t, raw, "<p>Bonjour</p>")
}

func TestBuildMessage_WithAttachments(t *testing.T) {
	d := testDispatcher()

	raw := string(d.buildMessage(Message{
		To:       "couverture@batihr.fr",
		Subject:  "Nouvelle demande de devis #DEV-123456",
		HTMLBody: "<p>Devis</p>",
		TextBody: "Devis",
		Attachments: []Attachment{
			{Filename: "plan.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")},
			{Filename: "photo.jpg", Content: []byte{0xFF, 0xD8, 0xFF}},
		},
	}))

	assert.Contains(t, raw, "Content-Type: multipart/mixed")
	assert.Contains(t, raw, "Content-Type: multipart/alternative")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="plan.pdf"`)
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
	// Missing content type defaults to octet-stream
	assert.Contains(t, raw, `Content-Type: application/octet-stream; name="photo.jpg"`)
}

func TestBuildMessage_EncodesUTF8Subject(t *testing.T) {
	d := testDispatcher()

	raw := string(d.buildMessage(Message{
		To:      "jean@example.com",
		Subject: "Confirmation de votre rendez-vous créé",
	}))

	// Non-ASCII subjects must be Q-encoded per RFC 2047
	lines := strings.Split(raw, "\r\n")
	var subject string
	for _, l := range lines {
		if strings.HasPrefix(l, "Subject: ") {
			subject = l
			break
		}
	}
	require.NotEmpty(t, subject)
	assert.Contains(t, subject, "=?utf-8?")
}

func TestWriteBase64_WrapsAt76Chars(t *testing.T) {
	d := testDispatcher()

	raw := string(d.buildMessage(Message{
		To:      "jean@example.com",
		Subject: "test",
		Attachments: []Attachment{
			{Filename: "big.bin", ContentType: "application/octet-stream", Content: make([]byte, 300)},
		},
	}))

	for _, line := range strings.Split(raw, "\r\n") {
		assert.LessOrEqual(t, len(line), 998, "RFC 5322 line length")
		if strings.Trim(line, "A=") == "" && len(line) > 0 {
			// base64 of zero bytes is all 'A' with '=' padding
			assert.LessOrEqual(t, len(line), 76)
		}
	}
}
