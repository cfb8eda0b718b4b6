// Package storage abstracts file storage for uploaded documents and images.
//
// Two implementations are provided: LocalStorage for development and
// R2Storage (Cloudflare R2, S3-compatible) for production. Stored objects
// are quote-request documents, application files and project photos.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage is the interface every provider implements. All methods honor
// context cancellation.
type Storage interface {
	// Put stores data at the given key. Returns ErrKeyExists when the key
	// is taken and opts.Overwrite is false.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get returns the object's data (caller closes) and its metadata.
	// Returns ErrNotFound for missing keys.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns an access URL for the object. Providers with a public
	// base URL return a permanent link; otherwise a presigned URL valid
	// for the given duration.
	URL(ctx context.Context, key string, expires time.Duration) (string, error)

	// Exists reports whether an object is stored at the key.
	Exists(ctx context.Context, key string) (bool, error)
}

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType is the MIME type. Detected from the key when empty.
	ContentType string

	// MaxSize rejects objects larger than this many bytes. 0 means no limit.
	MaxSize int64

	// Overwrite allows replacing an existing object at the same key.
	Overwrite bool

	// Public marks the object world-readable where the provider supports it.
	Public bool
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// LocalConfig configures filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory, e.g. "./uploads".
	BasePath string

	// BaseURL is the public prefix files are served under,
	// e.g. "http://localhost:8080/uploads".
	BaseURL string
}

// R2Config configures Cloudflare R2 storage.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// PublicURL is the bucket's custom domain, if any. When empty every
	// access goes through presigned URLs.
	PublicURL string

	// Region defaults to "auto"; R2 is globally distributed.
	Region string
}

// Provider names accepted by the STORAGE_PROVIDER setting.
const (
	ProviderLocal = "local"
	ProviderR2    = "r2"
)

// DevisDocumentKey generates a key for a quote-request attachment.
// Format: devis/{devisID}/{uuid}{ext}
func DevisDocumentKey(devisID, filename string) string {
	return fmt.Sprintf("devis/%s/%s%s", devisID, uuid.New(), safeExt(filename))
}

// ApplicationFileKey generates a key for a job application file.
// Format: applications/{applicationID}/{kind}-{uuid}{ext}
// where kind is "cv" or "lettre".
func ApplicationFileKey(applicationID, kind, filename string) string {
	return fmt.Sprintf("applications/%s/%s-%s%s", applicationID, kind, uuid.New(), safeExt(filename))
}

// ProjectImageKey generates a key for a portfolio photo.
// Format: projects/{projectID}/{uuid}{ext}
func ProjectImageKey(projectID int64, filename string) string {
	return fmt.Sprintf("projects/%d/%s%s", projectID, uuid.New(), safeExt(filename))
}

// ProjectThumbnailKey generates a key for a portfolio photo thumbnail.
// Format: projects/{projectID}/thumbs/{uuid}{ext}
func ProjectThumbnailKey(projectID int64, filename string) string {
	return fmt.Sprintf("projects/%d/thumbs/%s%s", projectID, uuid.New(), safeExt(filename))
}

// safeExt extracts a lowercase extension stripped of anything unexpected.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
