package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/batihr/backend/internal/service"
)

type contextKey string

// adminContextKey carries the authenticated admin subject through the request.
const adminContextKey contextKey = "admin"

// AuthMiddleware guards the back-office routes with bearer tokens issued by
// the auth service.
type AuthMiddleware struct {
	auth   service.AuthService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(auth service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// RequireAdmin returns middleware that rejects requests without a valid
// bearer token.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearer(r)
		if token == "" {
			m.unauthorized(w, r)
			return
		}

		subject, err := m.auth.Verify(r.Context(), token)
		if err != nil {
			m.logger.Info("token rejected", "path", r.URL.Path, "ip", getClientIP(r))
			m.unauthorized(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": "Authentification requise",
	})
}

// AdminFromContext returns the authenticated admin subject, if any.
func AdminFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminContextKey).(string)
	return subject, ok
}

// extractBearer pulls the token out of the Authorization header.
func extractBearer(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
