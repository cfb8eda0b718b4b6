package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/batihr/backend/internal/domain"
)

// stubAuth accepts exactly one token.
type stubAuth struct{}

func (stubAuth) Login(ctx context.Context, username, password string) (string, error) {
	return "", domain.Unauthorized("stubAuth.Login", "Identifiants invalides")
}

func (stubAuth) Verify(ctx context.Context, token string) (string, error) {
	if token == "valid-token" {
		return "admin", nil
	}
	return "", domain.Unauthorized("stubAuth.Verify", "Authentification requise")
}

func newAuthHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mw := NewAuthMiddleware(stubAuth{}, logger)

	return mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := AdminFromContext(r.Context())
		if !ok {
			t.Error("expected admin in context")
		}
		if admin != "admin" {
			t.Errorf("expected admin subject, got %q", admin)
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	handler := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_Rejections(t *testing.T) {
	handler := newAuthHandler(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bare token", "valid-token"},
		{"invalid token", "Bearer forged-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("expected WWW-Authenticate header")
			}
		})
	}
}

func TestAdminFromContext_Empty(t *testing.T) {
	if _, ok := AdminFromContext(context.Background()); ok {
		t.Error("expected no admin in empty context")
	}
}
