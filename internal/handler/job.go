package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/service"
	"github.com/batihr/backend/internal/storage"
)

// JobHandler serves the public job board and receives applications.
type JobHandler struct {
	jobs        service.JobService
	submissions service.SubmissionService
	logger      *slog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs service.JobService, submissions service.SubmissionService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobs:        jobs,
		submissions: submissions,
		logger:      logger,
	}
}

// RegisterRoutes registers the job board routes. "apply" is registered
// before the slug route so the mux never treats it as a slug, and is the
// only route behind the rate limit wrapper.
func (h *JobHandler) RegisterRoutes(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/jobs", h.List)
	mux.Handle("POST /api/jobs/apply", limit(http.HandlerFunc(h.Apply)))
	mux.HandleFunc("GET /api/jobs/{slug}", h.Get)
	mux.HandleFunc("GET /api/jobs/{slug}/similar/{category}", h.ListSimilar)
}

// List handles GET /api/jobs?category=...
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, jobs)
}

// Get handles GET /api/jobs/{slug}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, job)
}

// ListSimilar handles GET /api/jobs/{slug}/similar/{category}.
func (h *JobHandler) ListSimilar(w http.ResponseWriter, r *http.Request) {
	similar, err := h.jobs.ListSimilar(r.Context(), r.PathValue("category"), r.PathValue("slug"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, similar)
}

// Apply handles POST /api/jobs/apply. The body is multipart/form-data with
// a mandatory "resume" file and an optional "coverLetter".
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	const op = "JobHandler.Apply"

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	jobID, _ := strconv.ParseInt(r.FormValue("jobId"), 10, 64)
	consent := r.FormValue("consent") == "true" || r.FormValue("consent") == "on"

	sub := domain.ApplicationSubmission{
		JobID:     jobID,
		JobTitle:  r.FormValue("jobTitle"),
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Message:   r.FormValue("message"),
		Consent:   consent,
	}

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["resume"]; len(files) > 0 {
			att, err := readAttachment(files[0], maxApplicationFile, storage.IsAllowedApplicationType, op)
			if err != nil {
				ErrorResponse(w, r, h.logger, err)
				return
			}
			sub.Resume = &att
		}
		if files := r.MultipartForm.File["coverLetter"]; len(files) > 0 {
			att, err := readAttachment(files[0], maxApplicationFile, storage.IsAllowedApplicationType, op)
			if err != nil {
				ErrorResponse(w, r, h.logger, err)
				return
			}
			sub.CoverLetter = &att
		}
	}

	applicationID, err := h.submissions.SubmitApplication(r.Context(), sub)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Code == domain.ENOTIFY {
			PartialFailureResponse(w, r, h.logger, err, map[string]string{"applicationId": applicationID})
			return
		}
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Votre candidature a été envoyée avec succès", map[string]string{"applicationId": applicationID})
}
