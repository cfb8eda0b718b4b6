package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/repository"
	"github.com/batihr/backend/internal/slug"
)

// JobService exposes published job offers.
type JobService interface {
	// List returns the active offers, optionally filtered by category.
	// Featured offers come first.
	List(ctx context.Context, category string) ([]domain.Job, error)

	// GetBySlug returns one active offer.
	GetBySlug(ctx context.Context, jobSlug string) (*domain.Job, error)

	// ListSimilar returns up to three other active offers in the same category.
	ListSimilar(ctx context.Context, category, excludeSlug string) ([]domain.Job, error)

	// Create publishes a new offer.
	Create(ctx context.Context, params domain.CreateJobParams) (*domain.Job, error)

	// Update changes an existing offer.
	Update(ctx context.Context, params domain.UpdateJobParams) error

	// Delete removes an offer.
	Delete(ctx context.Context, id int64) error
}

type jobService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(queries *repository.Queries, logger *slog.Logger) JobService {
	return &jobService{
		queries: queries,
		logger:  logger,
	}
}

func (s *jobService) List(ctx context.Context, category string) ([]domain.Job, error) {
	const op = "JobService.List"

	// "all" is the frontend's unfiltered value
	if category == "all" {
		category = ""
	}

	rows, err := s.queries.ListActiveJobs(ctx, category)
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err, "op", op, "category", category)
		return nil, domain.Internal(err, op, "Failed to list jobs")
	}

	jobs := make([]domain.Job, len(rows))
	for i, r := range rows {
		jobs[i] = repoJobToDomain(r)
	}
	return jobs, nil
}

func (s *jobService) GetBySlug(ctx context.Context, jobSlug string) (*domain.Job, error) {
	const op = "JobService.GetBySlug"

	row, err := s.queries.GetJobBySlug(ctx, jobSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "Offre d'emploi non trouvée")
		}
		s.logger.Error("failed to get job", "error", err, "op", op, "slug", jobSlug)
		return nil, domain.Internal(err, op, "Failed to retrieve job")
	}

	job := repoJobToDomain(row)
	return &job, nil
}

func (s *jobService) ListSimilar(ctx context.Context, category, excludeSlug string) ([]domain.Job, error) {
	const op = "JobService.ListSimilar"

	rows, err := s.queries.ListSimilarJobs(ctx, repository.ListSimilarJobsParams{
		Category: category,
		Slug:     excludeSlug,
	})
	if err != nil {
		s.logger.Error("failed to list similar jobs", "error", err, "op", op, "category", category)
		return nil, domain.Internal(err, op, "Failed to list similar jobs")
	}

	jobs := make([]domain.Job, len(rows))
	for i, r := range rows {
		jobs[i] = repoJobToDomain(r)
	}
	return jobs, nil
}

func (s *jobService) Create(ctx context.Context, params domain.CreateJobParams) (*domain.Job, error) {
	const op = "JobService.Create"

	if err := validateJobParams(op, params.Title, params.Location, params.Type, params.Category, params.Description); err != nil {
		return nil, err
	}

	jobSlug := strings.TrimSpace(params.Slug)
	if jobSlug == "" {
		jobSlug = slug.Make(params.Title)
	}

	row, err := s.queries.CreateJob(ctx, repository.CreateJobParams{
		Title:           strings.TrimSpace(params.Title),
		Slug:            jobSlug,
		Location:        strings.TrimSpace(params.Location),
		Type:            strings.TrimSpace(params.Type),
		Category:        strings.TrimSpace(params.Category),
		Description:     strings.TrimSpace(params.Description),
		FullDescription: toNullString(params.FullDescription),
		Salary:          toNullString(params.Salary),
		Experience:      toNullString(params.Experience),
		Education:       toNullString(params.Education),
		Featured:        params.Featured,
	})
	if err != nil {
		s.logger.Error("failed to create job", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to create job")
	}

	job := repoJobToDomain(row)
	s.logger.Info("job created", "job_id", job.ID, "slug", job.Slug)
	return &job, nil
}

func (s *jobService) Update(ctx context.Context, params domain.UpdateJobParams) error {
	const op = "JobService.Update"

	if _, err := s.queries.GetJobByID(ctx, params.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "Offre d'emploi non trouvée")
		}
		s.logger.Error("failed to get job for update", "error", err, "op", op, "job_id", params.ID)
		return domain.Internal(err, op, "Failed to retrieve job")
	}

	if err := validateJobParams(op, params.Title, params.Location, params.Type, params.Category, params.Description); err != nil {
		return err
	}

	err := s.queries.UpdateJob(ctx, repository.UpdateJobParams{
		ID:              params.ID,
		Title:           strings.TrimSpace(params.Title),
		Location:        strings.TrimSpace(params.Location),
		Type:            strings.TrimSpace(params.Type),
		Category:        strings.TrimSpace(params.Category),
		Description:     strings.TrimSpace(params.Description),
		FullDescription: toNullString(params.FullDescription),
		Salary:          toNullString(params.Salary),
		Experience:      toNullString(params.Experience),
		Education:       toNullString(params.Education),
		Featured:        params.Featured,
		Active:          params.Active,
	})
	if err != nil {
		s.logger.Error("failed to update job", "error", err, "op", op, "job_id", params.ID)
		return domain.Internal(err, op, "Failed to update job")
	}

	s.logger.Info("job updated", "job_id", params.ID)
	return nil
}

func (s *jobService) Delete(ctx context.Context, id int64) error {
	const op = "JobService.Delete"

	if _, err := s.queries.GetJobByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound(op, "Offre d'emploi non trouvée")
		}
		s.logger.Error("failed to get job for delete", "error", err, "op", op, "job_id", id)
		return domain.Internal(err, op, "Failed to retrieve job")
	}

	if err := s.queries.DeleteJob(ctx, id); err != nil {
		s.logger.Error("failed to delete job", "error", err, "op", op, "job_id", id)
		return domain.Internal(err, op, "Failed to delete job")
	}

	s.logger.Info("job deleted", "job_id", id)
	return nil
}

// validateJobParams checks the fields every offer requires.
func validateJobParams(op, title, location, jobType, category, description string) error {
	for _, field := range []string{title, location, jobType, category, description} {
		if strings.TrimSpace(field) == "" {
			return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
		}
	}
	return nil
}
