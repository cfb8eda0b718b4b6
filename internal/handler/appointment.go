package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/service"
)

// AppointmentHandler receives appointment requests.
type AppointmentHandler struct {
	submissions service.SubmissionService
	logger      *slog.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(submissions service.SubmissionService, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		submissions: submissions,
		logger:      logger,
	}
}

// RegisterRoutes registers the appointment route. The limit wrapper applies
// per-IP rate limiting.
func (h *AppointmentHandler) RegisterRoutes(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/appointments", limit(http.HandlerFunc(h.Submit)))
}

// appointmentRequest mirrors the frontend form payload.
type appointmentRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Reason          string `json:"reason"`
	PreferredMethod string `json:"preferredMethod"`
	Notes           string `json:"notes"`
	Cabinet         string `json:"cabinet"`
}

// Submit handles POST /api/appointments.
func (h *AppointmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "AppointmentHandler.Submit"

	var req appointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	appointmentID, err := h.submissions.SubmitAppointment(r.Context(), domain.AppointmentSubmission{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Reason:          req.Reason,
		PreferredMethod: req.PreferredMethod,
		Notes:           req.Notes,
		Cabinet:         req.Cabinet,
	})
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Code == domain.ENOTIFY {
			PartialFailureResponse(w, r, h.logger, err, map[string]string{"appointmentId": appointmentID})
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Demande de rendez-vous envoyée avec succès", map[string]string{"appointmentId": appointmentID})
}
