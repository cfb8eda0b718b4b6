package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		filename string
		data     []byte
		want     string
	}{
		{"provided wins", "application/pdf", "file.jpg", nil, "application/pdf"},
		{"extension fallback", "", "plan.pdf", nil, "application/pdf"},
		{"sniffing fallback", "", "noext", []byte("%PDF-1.4 content"), "application/pdf"},
		{"default", "", "noext", nil, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data *bytes.Reader
			if tt.data != nil {
				data = bytes.NewReader(tt.data)
			}
			if data != nil {
				assert.Equal(t, tt.want, DetectContentType(tt.provided, tt.filename, data))
			} else {
				assert.Equal(t, tt.want, DetectContentType(tt.provided, tt.filename, nil))
			}
		})
	}
}

func TestIsAllowedDevisType(t *testing.T) {
	assert.True(t, IsAllowedDevisType("application/pdf"))
	assert.True(t, IsAllowedDevisType("image/jpeg"))
	assert.True(t, IsAllowedDevisType("IMAGE/PNG"))
	assert.True(t, IsAllowedDevisType("application/pdf; charset=binary"))
	assert.False(t, IsAllowedDevisType("application/x-msdownload"))
	assert.False(t, IsAllowedDevisType("text/html"))
	assert.False(t, IsAllowedDevisType(""))
}

func TestIsAllowedApplicationType(t *testing.T) {
	assert.True(t, IsAllowedApplicationType("application/pdf"))
	assert.True(t, IsAllowedApplicationType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.False(t, IsAllowedApplicationType("image/jpeg"), "photos are not CVs")
}

func TestIsAllowedImageType(t *testing.T) {
	assert.True(t, IsAllowedImageType("image/webp"))
	assert.False(t, IsAllowedImageType("application/pdf"))
}

func TestKeyHelpers(t *testing.T) {
	key := DevisDocumentKey("DEV-123456", "Plan Toiture.PDF")
	assert.Regexp(t, `^devis/DEV-123456/[0-9a-f-]{36}\.pdf$`, key)

	key = ApplicationFileKey("APP-000001", "cv", "mon cv.docx")
	assert.Regexp(t, `^applications/APP-000001/cv-[0-9a-f-]{36}\.docx$`, key)

	key = ProjectImageKey(42, "photo.jpg")
	assert.Regexp(t, `^projects/42/[0-9a-f-]{36}\.jpg$`, key)

	key = ProjectThumbnailKey(42, "thumb.jpg")
	assert.Regexp(t, `^projects/42/thumbs/[0-9a-f-]{36}\.jpg$`, key)

	// Suspicious extensions are dropped
	key = DevisDocumentKey("DEV-1", "weird.name/with\\slash")
	assert.Regexp(t, `^devis/DEV-1/[0-9a-f-]{36}$`, key)
}
