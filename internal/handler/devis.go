package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/service"
	"github.com/batihr/backend/internal/storage"
)

// DevisHandler receives quote requests with their supporting documents.
type DevisHandler struct {
	submissions service.SubmissionService
	logger      *slog.Logger
}

// NewDevisHandler creates a new DevisHandler.
func NewDevisHandler(submissions service.SubmissionService, logger *slog.Logger) *DevisHandler {
	return &DevisHandler{
		submissions: submissions,
		logger:      logger,
	}
}

// RegisterRoutes registers the devis route. The limit wrapper applies
// per-IP rate limiting.
func (h *DevisHandler) RegisterRoutes(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/devis", limit(http.HandlerFunc(h.Submit)))
}

// Submit handles POST /api/devis. The body is multipart/form-data with the
// form fields and up to five documents under the "files" key.
func (h *DevisHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "DevisHandler.Submit"

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	sub := domain.DevisSubmission{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		ProjectType: r.FormValue("projectType"),
		Budget:      r.FormValue("budget"),
		Timeline:    r.FormValue("timeline"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
		Cabinet:     r.FormValue("cabinet"),
	}

	if r.MultipartForm != nil {
		files := r.MultipartForm.File["files"]
		if len(files) > maxDevisFiles {
			ErrorResponse(w, r, h.logger,
				domain.Invalid(op, fmt.Sprintf("Trop de fichiers (maximum %d)", maxDevisFiles)))
			return
		}
		for _, fh := range files {
			att, err := readAttachment(fh, maxDevisFileSize, storage.IsAllowedDevisType, op)
			if err != nil {
				ErrorResponse(w, r, h.logger, err)
				return
			}
			sub.Files = append(sub.Files, att)
		}
	}

	devisID, err := h.submissions.SubmitDevis(r.Context(), sub)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Code == domain.ENOTIFY {
			PartialFailureResponse(w, r, h.logger, err, map[string]string{"devisId": devisID})
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Votre demande de devis a été envoyée avec succès", map[string]string{"devisId": devisID})
}
