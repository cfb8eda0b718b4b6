package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) *LocalStorage {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewLocalStorage(LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/uploads/",
	}, logger)
	require.NoError(t, err)
	return store
}

func TestLocalStorage_PutGet(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	content := []byte("%PDF-1.4 test document")
	err := store.Put(ctx, "devis/DEV-123456/plan.pdf", bytes.NewReader(content), PutOptions{
		ContentType: "application/pdf",
	})
	require.NoError(t, err)

	rc, info, err := store.Get(ctx, "devis/DEV-123456/plan.pdf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, "application/pdf", info.ContentType)
}

func TestLocalStorage_Put_NoOverwriteByDefault(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.txt", bytes.NewReader([]byte("one")), PutOptions{}))

	err := store.Put(ctx, "a.txt", bytes.NewReader([]byte("two")), PutOptions{})
	assert.ErrorIs(t, err, ErrKeyExists)

	err = store.Put(ctx, "a.txt", bytes.NewReader([]byte("two")), PutOptions{Overwrite: true})
	assert.NoError(t, err)
}

func TestLocalStorage_Put_MaxSize(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	// Exactly at the limit passes
	err := store.Put(ctx, "ok.bin", bytes.NewReader(make([]byte, 10)), PutOptions{MaxSize: 10})
	assert.NoError(t, err)

	// One byte over is rejected and nothing is left behind
	err = store.Put(ctx, "big.bin", bytes.NewReader(make([]byte, 11)), PutOptions{MaxSize: 10})
	assert.True(t, IsTooLarge(err))

	exists, err := store.Exists(ctx, "big.bin")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_Get_NotFound(t *testing.T) {
	store := newTestLocal(t)

	_, _, err := store.Get(context.Background(), "missing.pdf")
	assert.True(t, IsNotFound(err))
}

func TestLocalStorage_Delete(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "x.txt", bytes.NewReader([]byte("x")), PutOptions{}))
	require.NoError(t, store.Delete(ctx, "x.txt"))

	exists, err := store.Exists(ctx, "x.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "x.txt"))
}

func TestLocalStorage_URL(t *testing.T) {
	store := newTestLocal(t)

	url, err := store.URL(context.Background(), "devis/DEV-1/plan.pdf", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/devis/DEV-1/plan.pdf", url)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	store := newTestLocal(t)
	ctx := context.Background()

	for _, key := range []string{"../etc/passwd", "devis/../../secret", ""} {
		err := store.Put(ctx, key, bytes.NewReader([]byte("x")), PutOptions{})
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	store := newTestLocal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, "x.txt", bytes.NewReader([]byte("x")), PutOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
