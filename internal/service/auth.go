package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/batihr/backend/internal/domain"
)

// AuthService authenticates the back-office administrator and issues the
// bearer tokens the admin routes require.
type AuthService interface {
	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, username, password string) (string, error)

	// Verify validates a bearer token and returns the subject.
	Verify(ctx context.Context, token string) (string, error)
}

// AuthConfig carries the single administrator account and signing material.
// The password is stored as a bcrypt hash; a plaintext ADMIN_PASSWORD is
// hashed at startup.
type AuthConfig struct {
	Username     string
	PasswordHash []byte
	JWTSecret    []byte
	TokenTTL     time.Duration
}

type authService struct {
	config AuthConfig
	logger *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(config AuthConfig, logger *slog.Logger) AuthService {
	if config.TokenTTL == 0 {
		config.TokenTTL = 24 * time.Hour
	}
	return &authService{
		config: config,
		logger: logger,
	}
}

// HashPassword derives the bcrypt hash stored in AuthConfig.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

const msgBadCredentials = "Identifiants invalides"

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "AuthService.Login"

	if strings.TrimSpace(username) == "" || password == "" {
		return "", domain.Invalid(op, msgMissingFields)
	}

	if username != s.config.Username {
		s.logger.Warn("login rejected", "op", op, "username", username)
		return "", domain.Unauthorized(op, msgBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword(s.config.PasswordHash, []byte(password)); err != nil {
		s.logger.Warn("login rejected", "op", op, "username", username)
		return "", domain.Unauthorized(op, msgBadCredentials)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.config.TokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.JWTSecret)
	if err != nil {
		s.logger.Error("failed to sign token", "error", err, "op", op)
		return "", domain.Internal(err, op, "Failed to sign token")
	}

	s.logger.Info("admin logged in", "username", username)
	return token, nil
}

func (s *authService) Verify(ctx context.Context, tokenStr string) (string, error) {
	const op = "AuthService.Verify"

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.Unauthorized(op, "Authentification requise")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.Unauthorized(op, "Authentification requise")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.Unauthorized(op, "Authentification requise")
	}

	return sub, nil
}
