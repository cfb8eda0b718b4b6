package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/sqlc-dev/pqtype"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/repository"
	"github.com/batihr/backend/internal/slug"
)

// ProjectService exposes the portfolio of completed worksites.
type ProjectService interface {
	// List returns the active projects, optionally filtered by category,
	// newest first.
	List(ctx context.Context, category string) ([]domain.Project, error)

	// GetBySlug returns one active project.
	GetBySlug(ctx context.Context, projectSlug string) (*domain.Project, error)

	// ListSimilar returns up to three other active projects in the same category.
	ListSimilar(ctx context.Context, category, excludeSlug string) ([]domain.Project, error)

	// ListFeatured returns up to six featured projects for the home page.
	ListFeatured(ctx context.Context) ([]domain.Project, error)

	// Create adds a new portfolio entry.
	Create(ctx context.Context, params domain.CreateProjectParams) (*domain.Project, error)

	// Update changes an existing project.
	Update(ctx context.Context, params domain.UpdateProjectParams) error

	// UpdateImage replaces a project's cover image URL.
	UpdateImage(ctx context.Context, id int64, imageURL string) error

	// Delete removes a project.
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(queries *repository.Queries, logger *slog.Logger) ProjectService {
	return &projectService{
		queries: queries,
		logger:  logger,
	}
}

func (s *projectService) List(ctx context.Context, category string) ([]domain.Project, error) {
	const op = "ProjectService.List"

	if category == "all" {
		category = ""
	}

	rows, err := s.queries.ListActiveProjects(ctx, category)
	if err != nil {
		s.logger.Error("failed to list projects", "error", err, "op", op, "category", category)
		return nil, domain.Internal(err, op, "Failed to list projects")
	}
	return projectsToDomain(rows), nil
}

func (s *projectService) GetBySlug(ctx context.Context, projectSlug string) (*domain.Project, error) {
	const op = "ProjectService.GetBySlug"

	row, err := s.queries.GetProjectBySlug(ctx, projectSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "Projet non trouvé")
		}
		s.logger.Error("failed to get project", "error", err, "op", op, "slug", projectSlug)
		return nil, domain.Internal(err, op, "Failed to retrieve project")
	}

	project := repoProjectToDomain(row)
	return &project, nil
}

func (s *projectService) ListSimilar(ctx context.Context, category, excludeSlug string) ([]domain.Project, error) {
	const op = "ProjectService.ListSimilar"

	rows, err := s.queries.ListSimilarProjects(ctx, repository.ListSimilarProjectsParams{
		Category: category,
		Slug:     excludeSlug,
	})
	if err != nil {
		s.logger.Error("failed to list similar projects", "error", err, "op", op, "category", category)
		return nil, domain.Internal(err, op, "Failed to list similar projects")
	}
	return projectsToDomain(rows), nil
}

func (s *projectService) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	const op = "ProjectService.ListFeatured"

	rows, err := s.queries.ListFeaturedProjects(ctx)
	if err != nil {
		s.logger.Error("failed to list featured projects", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list featured projects")
	}
	return projectsToDomain(rows), nil
}

func (s *projectService) Create(ctx context.Context, params domain.CreateProjectParams) (*domain.Project, error) {
	const op = "ProjectService.Create"

	if err := validateProjectParams(op, params.Title, params.Description, params.Category, params.Location, params.Year); err != nil {
		return nil, err
	}

	projectSlug := strings.TrimSpace(params.Slug)
	if projectSlug == "" {
		projectSlug = slug.Make(params.Title)
	}

	gallery, err := toNullJSON(params.Gallery)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to encode gallery")
	}
	testimonial, err := testimonialJSON(params.Testimonial)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to encode testimonial")
	}

	row, err := s.queries.CreateProject(ctx, repository.CreateProjectParams{
		Title:           strings.TrimSpace(params.Title),
		Slug:            projectSlug,
		Description:     strings.TrimSpace(params.Description),
		FullDescription: toNullString(params.FullDescription),
		Category:        strings.TrimSpace(params.Category),
		Location:        strings.TrimSpace(params.Location),
		Year:            int32(params.Year),
		Client:          toNullString(params.Client),
		Surface:         toNullString(params.Surface),
		Duration:        toNullString(params.Duration),
		Image:           strings.TrimSpace(params.Image),
		Gallery:         gallery,
		Testimonial:     testimonial,
		Featured:        params.Featured,
	})
	if err != nil {
		s.logger.Error("failed to create project", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to create project")
	}

	project := repoProjectToDomain(row)
	s.logger.Info("project created", "project_id", project.ID, "slug", project.Slug)
	return &project, nil
}

func (s *projectService) Update(ctx context.Context, params domain.UpdateProjectParams) error {
	const op = "ProjectService.Update"

	if _, err := s.queries.GetProjectByID(ctx, params.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "Projet non trouvé")
		}
		s.logger.Error("failed to get project for update", "error", err, "op", op, "project_id", params.ID)
		return domain.Internal(err, op, "Failed to retrieve project")
	}

	if err := validateProjectParams(op, params.Title, params.Description, params.Category, params.Location, params.Year); err != nil {
		return err
	}

	gallery, err := toNullJSON(params.Gallery)
	if err != nil {
		return domain.Internal(err, op, "Failed to encode gallery")
	}
	testimonial, err := testimonialJSON(params.Testimonial)
	if err != nil {
		return domain.Internal(err, op, "Failed to encode testimonial")
	}

	err = s.queries.UpdateProject(ctx, repository.UpdateProjectParams{
		ID:              params.ID,
		Title:           strings.TrimSpace(params.Title),
		Description:     strings.TrimSpace(params.Description),
		FullDescription: toNullString(params.FullDescription),
		Category:        strings.TrimSpace(params.Category),
		Location:        strings.TrimSpace(params.Location),
		Year:            int32(params.Year),
		Client:          toNullString(params.Client),
		Surface:         toNullString(params.Surface),
		Duration:        toNullString(params.Duration),
		Gallery:         gallery,
		Testimonial:     testimonial,
		Featured:        params.Featured,
		Active:          params.Active,
	})
	if err != nil {
		s.logger.Error("failed to update project", "error", err, "op", op, "project_id", params.ID)
		return domain.Internal(err, op, "Failed to update project")
	}

	s.logger.Info("project updated", "project_id", params.ID)
	return nil
}

func (s *projectService) UpdateImage(ctx context.Context, id int64, imageURL string) error {
	const op = "ProjectService.UpdateImage"

	if _, err := s.queries.GetProjectByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "Projet non trouvé")
		}
		s.logger.Error("failed to get project for image update", "error", err, "op", op, "project_id", id)
		return domain.Internal(err, op, "Failed to retrieve project")
	}

	err := s.queries.UpdateProjectImage(ctx, repository.UpdateProjectImageParams{
		ID:    id,
		Image: imageURL,
	})
	if err != nil {
		s.logger.Error("failed to update project image", "error", err, "op", op, "project_id", id)
		return domain.Internal(err, op, "Failed to update project image")
	}

	s.logger.Info("project image updated", "project_id", id)
	return nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	const op = "ProjectService.Delete"

	if _, err := s.queries.GetProjectByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "Projet non trouvé")
		}
		s.logger.Error("failed to get project for delete", "error", err, "op", op, "project_id", id)
		return domain.Internal(err, op, "Failed to retrieve project")
	}

	if err := s.queries.DeleteProject(ctx, id); err != nil {
		s.logger.Error("failed to delete project", "error", err, "op", op, "project_id", id)
		return domain.Internal(err, op, "Failed to delete project")
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// validateProjectParams checks the fields every portfolio entry requires.
func validateProjectParams(op, title, description, category, location string, year int) error {
	for _, field := range []string{title, description, category, location} {
		if strings.TrimSpace(field) == "" {
			return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
		}
	}
	if year < 1900 {
		return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
	}
	return nil
}

// testimonialJSON encodes an optional testimonial for the JSONB column.
// A nil testimonial becomes SQL NULL rather than the JSON literal null.
func testimonialJSON(t *domain.Testimonial) (pqtype.NullRawMessage, error) {
	if t == nil {
		return toNullJSON(nil)
	}
	return toNullJSON(t)
}
