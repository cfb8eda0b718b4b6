package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/service"
)

// AdminHandler exposes the back-office API: login plus CRUD over jobs,
// projects, services and settings.
type AdminHandler struct {
	auth     service.AuthService
	jobs     service.JobService
	projects service.ProjectService
	catalog  service.CatalogService
	images   service.ImageService
	logger   *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	auth service.AuthService,
	jobs service.JobService,
	projects service.ProjectService,
	catalog service.CatalogService,
	images service.ImageService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		jobs:     jobs,
		projects: projects,
		catalog:  catalog,
		images:   images,
		logger:   logger,
	}
}

// RegisterRoutes registers the admin routes. Everything except login goes
// through the requireAdmin middleware.
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/admin/login", h.Login)

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, requireAdmin(fn))
	}

	protected("POST /api/admin/jobs", h.CreateJob)
	protected("PUT /api/admin/jobs/{id}", h.UpdateJob)
	protected("DELETE /api/admin/jobs/{id}", h.DeleteJob)

	protected("POST /api/admin/projects", h.CreateProject)
	protected("PUT /api/admin/projects/{id}", h.UpdateProject)
	protected("DELETE /api/admin/projects/{id}", h.DeleteProject)
	protected("POST /api/admin/projects/{id}/image", h.UploadProjectImage)

	protected("POST /api/admin/services", h.CreateService)
	protected("PUT /api/admin/services/{id}", h.UpdateService)
	protected("DELETE /api/admin/services/{id}", h.DeleteService)
	protected("PUT /api/admin/services/{id}/details", h.UpsertServiceDetails)

	protected("PUT /api/admin/settings/{key}", h.UpsertSetting)
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.Login"

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Connexion réussie", map[string]string{"token": token})
}

// jobRequest carries the admin job payload for create and update.
type jobRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	FullDescription string `json:"fullDescription"`
	Salary          string `json:"salary"`
	Experience      string `json:"experience"`
	Education       string `json:"education"`
	Featured        bool   `json:"featured"`
	Active          bool   `json:"active"`
}

// CreateJob handles POST /api/admin/jobs.
func (h *AdminHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.CreateJob"

	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	job, err := h.jobs.Create(r.Context(), domain.CreateJobParams{
		Title:           req.Title,
		Slug:            req.Slug,
		Location:        req.Location,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Salary:          req.Salary,
		Experience:      req.Experience,
		Education:       req.Education,
		Featured:        req.Featured,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Offre d'emploi créée avec succès", job)
}

// UpdateJob handles PUT /api/admin/jobs/{id}.
func (h *AdminHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.UpdateJob"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	err = h.jobs.Update(r.Context(), domain.UpdateJobParams{
		ID:              id,
		Title:           req.Title,
		Location:        req.Location,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Salary:          req.Salary,
		Experience:      req.Experience,
		Education:       req.Education,
		Featured:        req.Featured,
		Active:          req.Active,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Offre d'emploi mise à jour avec succès", nil)
}

// DeleteJob handles DELETE /api/admin/jobs/{id}.
func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteJob"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	if err := h.jobs.Delete(r.Context(), id); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Offre d'emploi supprimée avec succès", nil)
}

// projectRequest carries the admin project payload for create and update.
type projectRequest struct {
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Description     string              `json:"description"`
	FullDescription string              `json:"fullDescription"`
	Category        string              `json:"category"`
	Location        string              `json:"location"`
	Year            int                 `json:"year"`
	Client          string              `json:"client"`
	Surface         string              `json:"surface"`
	Duration        string              `json:"duration"`
	Image           string              `json:"image"`
	Gallery         []string            `json:"gallery"`
	Testimonial     *domain.Testimonial `json:"testimonial"`
	Featured        bool                `json:"featured"`
	Active          bool                `json:"active"`
}

// CreateProject handles POST /api/admin/projects.
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.CreateProject"

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	project, err := h.projects.Create(r.Context(), domain.CreateProjectParams{
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		Location:        req.Location,
		Year:            req.Year,
		Client:          req.Client,
		Surface:         req.Surface,
		Duration:        req.Duration,
		Image:           req.Image,
		Gallery:         req.Gallery,
		Testimonial:     req.Testimonial,
		Featured:        req.Featured,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Projet créé avec succès", project)
}

// UpdateProject handles PUT /api/admin/projects/{id}.
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.UpdateProject"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	err = h.projects.Update(r.Context(), domain.UpdateProjectParams{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		Location:        req.Location,
		Year:            req.Year,
		Client:          req.Client,
		Surface:         req.Surface,
		Duration:        req.Duration,
		Gallery:         req.Gallery,
		Testimonial:     req.Testimonial,
		Featured:        req.Featured,
		Active:          req.Active,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Projet mis à jour avec succès", nil)
}

// DeleteProject handles DELETE /api/admin/projects/{id}.
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProject"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Projet supprimé avec succès", nil)
}

// UploadProjectImage handles POST /api/admin/projects/{id}/image. The body
// is multipart/form-data with the photo under "image".
func (h *AdminHandler) UploadProjectImage(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.UploadProjectImage"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir une image"))
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir une image"))
		return
	}

	att, err := readAttachment(files[0], maxDevisFileSize, func(string) bool { return true }, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	url, err := h.images.UploadProjectImage(r.Context(), id, att.OriginalName, att.ContentType, att.Content)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Image mise à jour avec succès", map[string]string{"image": url})
}

// serviceRequest carries the admin service payload for create and update.
type serviceRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `json:"order"`
	Active      bool   `json:"active"`
}

// CreateService handles POST /api/admin/services.
func (h *AdminHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.CreateService"

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	created, err := h.catalog.CreateService(r.Context(), domain.CreateServiceParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	Created(w, "Service créé avec succès", created)
}

// UpdateService handles PUT /api/admin/services/{id}.
func (h *AdminHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.UpdateService"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	err = h.catalog.UpdateService(r.Context(), domain.UpdateServiceParams{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Active:      req.Active,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Service mis à jour avec succès", nil)
}

// DeleteService handles DELETE /api/admin/services/{id}.
func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteService"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	if err := h.catalog.DeleteService(r.Context(), id); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Service supprimé avec succès", nil)
}

// UpsertServiceDetails handles PUT /api/admin/services/{id}/details.
func (h *AdminHandler) UpsertServiceDetails(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.UpsertServiceDetails"

	id, err := pathID(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Identifiant invalide"))
		return
	}

	var req struct {
		Sections []struct {
			Section   string `json:"section"`
			Content   string `json:"content"`
			SortOrder int    `json:"order"`
		} `json:"sections"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	sections := make([]domain.ServiceDetail, len(req.Sections))
	for i, s := range req.Sections {
		sections[i] = domain.ServiceDetail{
			Section:   s.Section,
			Content:   s.Content,
			SortOrder: s.SortOrder,
		}
	}

	if err := h.catalog.UpsertServiceDetails(r.Context(), id, sections); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Détails du service enregistrés avec succès", nil)
}

// UpsertSetting handles PUT /api/admin/settings/{key}.
func (h *AdminHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.UpsertSetting"

	var req struct {
		Value  string `json:"setting_value"`
		Group  string `json:"setting_group"`
		Public bool   `json:"is_public"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Veuillez fournir toutes les informations requises"))
		return
	}

	err := h.catalog.UpsertSetting(r.Context(), domain.Setting{
		Key:    r.PathValue("key"),
		Value:  req.Value,
		Group:  req.Group,
		Public: req.Public,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	OKMessage(w, "Paramètre enregistré avec succès", nil)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
