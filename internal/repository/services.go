package repository

import (
	"context"
	"database/sql"
)

const listServices = `
SELECT id, title, description, image, slug, active, sort_order, created_at, updated_at
FROM services
ORDER BY sort_order ASC
`

// ListServices returns every service ordered by its explicit display order.
func (q *Queries) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := q.db.QueryContext(ctx, listServices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []Service
	for rows.Next() {
		var s Service
		if err := scanService(rows, &s); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

const getServiceBySlug = `
SELECT id, title, description, image, slug, active, sort_order, created_at, updated_at
FROM services
WHERE slug = $1
`

// GetServiceBySlug returns a service by slug.
func (q *Queries) GetServiceBySlug(ctx context.Context, slug string) (Service, error) {
	var s Service
	err := scanService(q.db.QueryRowContext(ctx, getServiceBySlug, slug), &s)
	return s, err
}

const listServiceDetails = `
SELECT id, service_id, section, content, sort_order
FROM service_details
WHERE service_id = $1
ORDER BY sort_order ASC
`

// ListServiceDetails returns the detail sections of a service in display order.
func (q *Queries) ListServiceDetails(ctx context.Context, serviceID int64) ([]ServiceDetail, error) {
	rows, err := q.db.QueryContext(ctx, listServiceDetails, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []ServiceDetail
	for rows.Next() {
		var d ServiceDetail
		if err := rows.Scan(&d.ID, &d.ServiceID, &d.Section, &d.Content, &d.SortOrder); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

const createService = `
INSERT INTO services (title, slug, description, image, sort_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, title, description, image, slug, active, sort_order, created_at, updated_at
`

// CreateServiceParams carries a new service's columns.
type CreateServiceParams struct {
	Title       string
	Slug        string
	Description string
	Image       sql.NullString
	SortOrder   int32
}

// CreateService inserts a new service and returns the stored row.
func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (Service, error) {
	var s Service
	err := scanService(q.db.QueryRowContext(ctx, createService,
		arg.Title, arg.Slug, arg.Description, arg.Image, arg.SortOrder), &s)
	return s, err
}

const updateService = `
UPDATE services
SET title = $2, description = $3, image = $4, active = $5, sort_order = $6, updated_at = NOW()
WHERE id = $1
`

// UpdateServiceParams carries the mutable columns of a service.
type UpdateServiceParams struct {
	ID          int64
	Title       string
	Description string
	Image       sql.NullString
	Active      bool
	SortOrder   int32
}

// UpdateService updates an existing service.
func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) error {
	_, err := q.db.ExecContext(ctx, updateService,
		arg.ID, arg.Title, arg.Description, arg.Image, arg.Active, arg.SortOrder)
	return err
}

const deleteServiceDetails = `
DELETE FROM service_details WHERE service_id = $1
`

const insertServiceDetail = `
INSERT INTO service_details (service_id, section, content, sort_order)
VALUES ($1, $2, $3, $4)
`

// ServiceDetailSection is one detail section to store for a service.
type ServiceDetailSection struct {
	Section   string
	Content   string
	SortOrder int32
}

// ReplaceServiceDetails swaps a service's detail sections for the given set.
func (q *Queries) ReplaceServiceDetails(ctx context.Context, serviceID int64, sections []ServiceDetailSection) error {
	if _, err := q.db.ExecContext(ctx, deleteServiceDetails, serviceID); err != nil {
		return err
	}
	for _, s := range sections {
		if _, err := q.db.ExecContext(ctx, insertServiceDetail,
			serviceID, s.Section, s.Content, s.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

const deleteService = `
DELETE FROM services WHERE id = $1
`

// DeleteService removes a service and (by cascade) its detail sections.
func (q *Queries) DeleteService(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteService, id)
	return err
}

func scanService(s rowScanner, svc *Service) error {
	return s.Scan(
		&svc.ID, &svc.Title, &svc.Description, &svc.Image, &svc.Slug,
		&svc.Active, &svc.SortOrder, &svc.CreatedAt, &svc.UpdatedAt,
	)
}
