package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"domain error", Invalid("op", "bad input"), EINVALID},
		{"wrapped domain error", fmt.Errorf("outer: %w", NotFound("op", "missing")), ENOTFOUND},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage_HidesInternalDetail(t *testing.T) {
	internal := Internal(errors.New("pq: connection refused"), "op", "Failed to save")
	msg := ErrorMessage(internal)

	assert.NotContains(t, msg, "connection refused")
	assert.Equal(t, "Une erreur interne est survenue. Veuillez réessayer plus tard.", msg)

	// Plain errors are masked the same way
	assert.Equal(t, msg, ErrorMessage(errors.New("boom")))
}

func TestErrorMessage_PassesUserFacingMessages(t *testing.T) {
	err := Invalid("op", "Veuillez fournir toutes les informations requises")
	assert.Equal(t, "Veuillez fournir toutes les informations requises", ErrorMessage(err))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Internal(cause, "op", "failed")
	assert.ErrorIs(t, err, cause)
}

func TestNotificationFailed(t *testing.T) {
	err := NotificationFailed("SubmissionService.SubmitContact", "Le message a été enregistré mais l'email n'a pas pu être envoyé")
	assert.Equal(t, ENOTIFY, ErrorCode(err))
	assert.Contains(t, err.Error(), "SubmissionService.SubmitContact")
}
