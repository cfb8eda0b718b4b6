package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/service"
)

// ContactHandler receives contact-form submissions.
type ContactHandler struct {
	submissions service.SubmissionService
	logger      *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(submissions service.SubmissionService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		submissions: submissions,
		logger:      logger,
	}
}

// RegisterRoutes registers the contact route. The limit wrapper applies
// per-IP rate limiting.
func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/contact", limit(http.HandlerFunc(h.Submit)))
}

// contactRequest mirrors the frontend form payload.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Cabinet string `json:"cabinet"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "ContactHandler.Submit"

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	messageID, err := h.submissions.SubmitContact(r.Context(), domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Cabinet: req.Cabinet,
	})
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Code == domain.ENOTIFY {
			PartialFailureResponse(w, r, h.logger, err, map[string]string{"messageId": messageID})
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Votre message a été envoyé avec succès", map[string]string{"messageId": messageID})
}
