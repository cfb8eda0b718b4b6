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

// ServiceDetailPage bundles a service with its detail page sections.
type ServiceDetailPage struct {
	domain.Service
	Details []domain.ServiceDetail `json:"details"`
}

// CatalogService exposes the site's services and public settings.
type CatalogService interface {
	// ListServices returns the active services ordered for display.
	ListServices(ctx context.Context) ([]domain.Service, error)

	// GetServiceBySlug returns one service by slug.
	GetServiceBySlug(ctx context.Context, serviceSlug string) (*domain.Service, error)

	// GetServiceDetail returns a service together with its detail page
	// sections.
	GetServiceDetail(ctx context.Context, serviceSlug string) (*ServiceDetailPage, error)

	// ListSettings returns the public site settings.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// GetSetting returns a single public setting by key.
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)

	// CreateService adds a new service entry.
	CreateService(ctx context.Context, params domain.CreateServiceParams) (*domain.Service, error)

	// UpdateService changes an existing service.
	UpdateService(ctx context.Context, params domain.UpdateServiceParams) error

	// DeleteService removes a service and its detail sections.
	DeleteService(ctx context.Context, id int64) error

	// UpsertServiceDetails replaces a service's detail page sections.
	UpsertServiceDetails(ctx context.Context, serviceID int64, sections []domain.ServiceDetail) error

	// UpsertSetting creates or replaces a setting.
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}

type catalogService struct {
	queries *repository.Queries
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(queries *repository.Queries, logger *slog.Logger) CatalogService {
	return &catalogService{
		queries: queries,
		logger:  logger,
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	const op = "CatalogService.ListServices"

	rows, err := s.queries.ListServices(ctx)
	if err != nil {
		s.logger.Error("failed to list services", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list services")
	}

	services := make([]domain.Service, len(rows))
	for i, r := range rows {
		services[i] = repoServiceToDomain(r)
	}
	return services, nil
}

func (s *catalogService) GetServiceBySlug(ctx context.Context, serviceSlug string) (*domain.Service, error) {
	const op = "CatalogService.GetServiceBySlug"

	row, err := s.queries.GetServiceBySlug(ctx, serviceSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "Service non trouvé")
		}
		s.logger.Error("failed to get service", "error", err, "op", op, "slug", serviceSlug)
		return nil, domain.Internal(err, op, "Failed to retrieve service")
	}

	svc := repoServiceToDomain(row)
	return &svc, nil
}

func (s *catalogService) GetServiceDetail(ctx context.Context, serviceSlug string) (*ServiceDetailPage, error) {
	const op = "CatalogService.GetServiceDetail"

	row, err := s.queries.GetServiceBySlug(ctx, serviceSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "Service non trouvé")
		}
		s.logger.Error("failed to get service", "error", err, "op", op, "slug", serviceSlug)
		return nil, domain.Internal(err, op, "Failed to retrieve service")
	}

	detailRows, err := s.queries.ListServiceDetails(ctx, row.ID)
	if err != nil {
		s.logger.Error("failed to list service details", "error", err, "op", op, "service_id", row.ID)
		return nil, domain.Internal(err, op, "Failed to retrieve service details")
	}
	if len(detailRows) == 0 {
		return nil, domain.NotFound(op, "Détails du service non trouvés")
	}

	page := &ServiceDetailPage{
		Service: repoServiceToDomain(row),
		Details: make([]domain.ServiceDetail, len(detailRows)),
	}
	for i, d := range detailRows {
		page.Details[i] = repoServiceDetailToDomain(d)
	}
	return page, nil
}

func (s *catalogService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	const op = "CatalogService.ListSettings"

	rows, err := s.queries.ListPublicSettings(ctx)
	if err != nil {
		s.logger.Error("failed to list settings", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to list settings")
	}

	settings := make([]domain.Setting, len(rows))
	for i, r := range rows {
		settings[i] = repoSettingToDomain(r)
	}
	return settings, nil
}

func (s *catalogService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	const op = "CatalogService.GetSetting"

	row, err := s.queries.GetPublicSetting(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(op, "Paramètre non trouvé")
		}
		s.logger.Error("failed to get setting", "error", err, "op", op, "key", key)
		return nil, domain.Internal(err, op, "Failed to retrieve setting")
	}

	setting := repoSettingToDomain(row)
	return &setting, nil
}

func (s *catalogService) CreateService(ctx context.Context, params domain.CreateServiceParams) (*domain.Service, error) {
	const op = "CatalogService.CreateService"

	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Description) == "" {
		return nil, domain.Invalid(op, "Veuillez fournir toutes les informations requises")
	}

	serviceSlug := strings.TrimSpace(params.Slug)
	if serviceSlug == "" {
		serviceSlug = slug.Make(params.Title)
	}

	row, err := s.queries.CreateService(ctx, repository.CreateServiceParams{
		Title:       strings.TrimSpace(params.Title),
		Slug:        serviceSlug,
		Description: strings.TrimSpace(params.Description),
		Image:       toNullString(params.Image),
		SortOrder:   int32(params.SortOrder),
	})
	if err != nil {
		s.logger.Error("failed to create service", "error", err, "op", op)
		return nil, domain.Internal(err, op, "Failed to create service")
	}

	created := repoServiceToDomain(row)
	s.logger.Info("service created", "service_id", created.ID, "slug", created.Slug)
	return &created, nil
}

func (s *catalogService) UpdateService(ctx context.Context, params domain.UpdateServiceParams) error {
	const op = "CatalogService.UpdateService"

	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Description) == "" {
		return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
	}

	err := s.queries.UpdateService(ctx, repository.UpdateServiceParams{
		ID:          params.ID,
		Title:       strings.TrimSpace(params.Title),
		Description: strings.TrimSpace(params.Description),
		Image:       toNullString(params.Image),
		Active:      params.Active,
		SortOrder:   int32(params.SortOrder),
	})
	if err != nil {
		s.logger.Error("failed to update service", "error", err, "op", op, "service_id", params.ID)
		return domain.Internal(err, op, "Failed to update service")
	}

	s.logger.Info("service updated", "service_id", params.ID)
	return nil
}

func (s *catalogService) DeleteService(ctx context.Context, id int64) error {
	const op = "CatalogService.DeleteService"

	if err := s.queries.DeleteService(ctx, id); err != nil {
		s.logger.Error("failed to delete service", "error", err, "op", op, "service_id", id)
		return domain.Internal(err, op, "Failed to delete service")
	}

	s.logger.Info("service deleted", "service_id", id)
	return nil
}

func (s *catalogService) UpsertServiceDetails(ctx context.Context, serviceID int64, sections []domain.ServiceDetail) error {
	const op = "CatalogService.UpsertServiceDetails"

	if len(sections) == 0 {
		return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
	}
	for _, section := range sections {
		if strings.TrimSpace(section.Section) == "" || strings.TrimSpace(section.Content) == "" {
			return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
		}
	}

	stored := make([]repository.ServiceDetailSection, len(sections))
	for i, section := range sections {
		stored[i] = repository.ServiceDetailSection{
			Section:   strings.TrimSpace(section.Section),
			Content:   section.Content,
			SortOrder: int32(section.SortOrder),
		}
	}

	if err := s.queries.ReplaceServiceDetails(ctx, serviceID, stored); err != nil {
		s.logger.Error("failed to save service details", "error", err, "op", op, "service_id", serviceID)
		return domain.Internal(err, op, "Failed to save service details")
	}

	s.logger.Info("service details saved", "service_id", serviceID, "sections", len(sections))
	return nil
}

func (s *catalogService) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	const op = "CatalogService.UpsertSetting"

	if strings.TrimSpace(setting.Key) == "" {
		return domain.Invalid(op, "Veuillez fournir toutes les informations requises")
	}

	err := s.queries.UpsertSetting(ctx, repository.UpsertSettingParams{
		SettingKey:   strings.TrimSpace(setting.Key),
		SettingValue: setting.Value,
		SettingGroup: setting.Group,
		IsPublic:     setting.Public,
	})
	if err != nil {
		s.logger.Error("failed to upsert setting", "error", err, "op", op, "key", setting.Key)
		return domain.Internal(err, op, "Failed to save setting")
	}

	s.logger.Info("setting saved", "key", setting.Key)
	return nil
}
