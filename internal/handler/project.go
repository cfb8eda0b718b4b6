package handler

import (
	"log/slog"
	"net/http"

	"github.com/batihr/backend/internal/service"
)

// ProjectHandler serves the public portfolio.
type ProjectHandler struct {
	projects service.ProjectService
	logger   *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		logger:   logger,
	}
}

// RegisterRoutes registers the portfolio routes. "featured" is registered
// before the slug route so the mux never treats it as a slug.
func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("GET /api/projects/featured", h.ListFeatured)
	mux.HandleFunc("GET /api/projects/{slug}", h.Get)
	mux.HandleFunc("GET /api/projects/{slug}/similar/{category}", h.ListSimilar)
}

// List handles GET /api/projects?category=...
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, projects)
}

// ListFeatured handles GET /api/projects/featured.
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListFeatured(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, projects)
}

// Get handles GET /api/projects/{slug}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, project)
}

// ListSimilar handles GET /api/projects/{slug}/similar/{category}.
func (h *ProjectHandler) ListSimilar(w http.ResponseWriter, r *http.Request) {
	similar, err := h.projects.ListSimilar(r.Context(), r.PathValue("category"), r.PathValue("slug"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, similar)
}
