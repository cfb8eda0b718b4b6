package handler

import (
	"log/slog"
	"net/http"

	"github.com/batihr/backend/internal/service"
)

// CatalogHandler serves the services catalog and public site settings.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers the catalog routes.
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/services", h.ListServices)
	mux.HandleFunc("GET /api/services/{slug}", h.GetService)
	mux.HandleFunc("GET /api/service-details/{slug}", h.GetServiceDetail)
	mux.HandleFunc("GET /api/settings", h.ListSettings)
	mux.HandleFunc("GET /api/settings/{key}", h.GetSetting)
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, services)
}

// GetService handles GET /api/services/{slug}.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.GetServiceBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, svc)
}

// GetServiceDetail handles GET /api/service-details/{slug}.
func (h *CatalogHandler) GetServiceDetail(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.GetServiceDetail(r.Context(), r.PathValue("slug"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, page)
}

// ListSettings handles GET /api/settings.
func (h *CatalogHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.catalog.ListSettings(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, settings)
}

// GetSetting handles GET /api/settings/{key}.
func (h *CatalogHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.catalog.GetSetting(r.Context(), r.PathValue("key"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	OK(w, setting)
}
