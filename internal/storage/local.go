package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps objects as plain files under a base directory. Keys map
// to relative paths below the base; traversal outside it is rejected.
type LocalStorage struct {
	basePath string
	baseURL  string
	logger   *slog.Logger
}

// NewLocalStorage creates the base directory if needed and returns the store.
func NewLocalStorage(cfg LocalConfig, logger *slog.Logger) (*LocalStorage, error) {
	base, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	s := &LocalStorage{
		basePath: base,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		logger:   logger,
	}
	logger.Info("initialized local storage", "base_path", base, "base_url", s.baseURL)
	return s, nil
}

func localErr(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

// Put stores data under key. Without Overwrite an existing file is an error.
func (s *LocalStorage) Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return localErr("Put", key, err)
	}

	if !opts.Overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return localErr("Put", key, ErrKeyExists)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return localErr("Put", key, fmt.Errorf("failed to create directory: %w", err))
	}

	// Write to a sibling temp file and rename so readers never observe a
	// partially written object.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return localErr("Put", key, fmt.Errorf("failed to create file: %w", err))
	}
	tmpName := tmp.Name()

	written, err := copyBounded(tmp, data, opts.MaxSize)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		if err == ErrTooLarge {
			return localErr("Put", key, ErrTooLarge)
		}
		return localErr("Put", key, fmt.Errorf("failed to write file: %w", err))
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return localErr("Put", key, fmt.Errorf("failed to write file: %w", err))
	}

	s.logger.Debug("stored file", "key", key, "size", written, "content_type", opts.ContentType)
	return nil
}

// copyBounded copies src to dst, failing with ErrTooLarge past max bytes.
// A max of zero means unbounded.
func copyBounded(dst io.Writer, src io.Reader, max int64) (int64, error) {
	if max <= 0 {
		return io.Copy(dst, src)
	}
	// One byte past the limit distinguishes exactly-at-limit from over.
	n, err := io.Copy(dst, io.LimitReader(src, max+1))
	if err != nil {
		return n, err
	}
	if n > max {
		return n, ErrTooLarge
	}
	return n, nil
}

// Get opens the object at key.
func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return nil, ObjectInfo{}, localErr("Get", key, err)
	}

	stat, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return nil, ObjectInfo{}, localErr("Get", key, ErrNotFound)
	case err != nil:
		return nil, ObjectInfo{}, localErr("Get", key, fmt.Errorf("failed to stat file: %w", err))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ObjectInfo{}, localErr("Get", key, fmt.Errorf("failed to open file: %w", err))
	}

	return file, ObjectInfo{
		Key:          key,
		Size:         stat.Size(),
		ContentType:  DetectContentType("", key, nil),
		LastModified: stat.ModTime(),
	}, nil
}

// Delete removes the object at key. Deleting a missing key is not an error.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return localErr("Delete", key, err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return localErr("Delete", key, fmt.Errorf("failed to delete file: %w", err))
	}

	s.logger.Debug("deleted file", "key", key)
	return nil
}

// URL returns a public URL. Local files never expire, the duration is ignored.
func (s *LocalStorage) URL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := s.resolvePath(key); err != nil {
		return "", localErr("URL", key, err)
	}
	return s.baseURL + "/" + key, nil
}

// Exists reports whether an object is present at key.
func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return false, localErr("Exists", key, err)
	}

	_, err = os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, localErr("Exists", key, fmt.Errorf("failed to stat file: %w", err))
	}
	return true, nil
}

// resolvePath converts a key to an absolute path under the base directory.
// Keys containing ".." or escaping the base are rejected.
func (s *LocalStorage) resolvePath(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	clean := filepath.Clean(key)
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", ErrInvalidKey
	}

	path := filepath.Join(s.basePath, clean)
	if !strings.HasPrefix(path, s.basePath) {
		return "", ErrInvalidKey
	}
	return path, nil
}
