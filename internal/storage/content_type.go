package storage

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// DetectContentType determines the MIME type of a file. Priority: the
// provided type, then the filename extension, then sniffing the first
// 512 bytes, then application/octet-stream.
func DetectContentType(providedType, filename string, data io.Reader) string {
	if providedType != "" {
		return providedType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	if data != nil {
		buffer := make([]byte, 512)
		n, err := io.ReadFull(data, buffer)
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			return http.DetectContentType(buffer[:n])
		}
	}

	return "application/octet-stream"
}

// AllowedDevisTypes are the MIME types accepted for quote-request
// attachments: documents and photos of the worksite.
var AllowedDevisTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AllowedApplicationTypes are the MIME types accepted for CVs and cover
// letters.
var AllowedApplicationTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AllowedImageTypes are the MIME types accepted for portfolio photos.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// IsAllowedDevisType reports whether a content type may be attached to a
// quote request.
func IsAllowedDevisType(contentType string) bool {
	return AllowedDevisTypes[baseType(contentType)]
}

// IsAllowedApplicationType reports whether a content type may be submitted
// as a CV or cover letter.
func IsAllowedApplicationType(contentType string) bool {
	return AllowedApplicationTypes[baseType(contentType)]
}

// IsAllowedImageType reports whether a content type is accepted for
// portfolio photo uploads.
func IsAllowedImageType(contentType string) bool {
	return AllowedImageTypes[baseType(contentType)]
}

// baseType strips parameters like charset and normalizes case.
func baseType(contentType string) string {
	base := strings.Split(contentType, ";")[0]
	return strings.TrimSpace(strings.ToLower(base))
}
