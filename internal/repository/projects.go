package repository

import (
	"context"
	"database/sql"

	"github.com/sqlc-dev/pqtype"
)

const projectColumns = `id, title, slug, description, full_description, category, location,
       year, client, surface, duration, image, gallery, testimonial,
       featured, active, created_at, updated_at`

const listActiveProjects = `
SELECT ` + projectColumns + `
FROM projects
WHERE active = TRUE AND ($1 = '' OR category = $1)
ORDER BY year DESC
`

// ListActiveProjects returns active projects, optionally filtered by
// category, most recent year first.
func (q *Queries) ListActiveProjects(ctx context.Context, category string) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listActiveProjects, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

const getProjectBySlug = `
SELECT ` + projectColumns + `
FROM projects
WHERE slug = $1 AND active = TRUE
`

// GetProjectBySlug returns an active project by slug.
func (q *Queries) GetProjectBySlug(ctx context.Context, slug string) (Project, error) {
	var p Project
	err := scanProject(q.db.QueryRowContext(ctx, getProjectBySlug, slug), &p)
	return p, err
}

const getProjectByID = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1
`

// GetProjectByID returns a project by primary key regardless of active state.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := scanProject(q.db.QueryRowContext(ctx, getProjectByID, id), &p)
	return p, err
}

const listSimilarProjects = `
SELECT ` + projectColumns + `
FROM projects
WHERE category = $1 AND slug <> $2 AND active = TRUE
ORDER BY year DESC
LIMIT 3
`

// ListSimilarProjectsParams identifies the project to exclude and its category.
type ListSimilarProjectsParams struct {
	Category string
	Slug     string
}

// ListSimilarProjects returns up to three other active projects in the same
// category.
func (q *Queries) ListSimilarProjects(ctx context.Context, arg ListSimilarProjectsParams) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listSimilarProjects, arg.Category, arg.Slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

const listFeaturedProjects = `
SELECT ` + projectColumns + `
FROM projects
WHERE featured = TRUE AND active = TRUE
ORDER BY year DESC
LIMIT 6
`

// ListFeaturedProjects returns up to six featured active projects.
func (q *Queries) ListFeaturedProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listFeaturedProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

const createProject = `
INSERT INTO projects (title, slug, description, full_description, category, location,
                      year, client, surface, duration, image, gallery, testimonial, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + projectColumns + `
`

// CreateProjectParams carries a new project's columns.
type CreateProjectParams struct {
	Title           string
	Slug            string
	Description     string
	FullDescription sql.NullString
	Category        string
	Location        string
	Year            int32
	Client          sql.NullString
	Surface         sql.NullString
	Duration        sql.NullString
	Image           string
	Gallery         pqtype.NullRawMessage
	Testimonial     pqtype.NullRawMessage
	Featured        bool
}

// CreateProject inserts a new project and returns the stored row.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	var p Project
	err := scanProject(q.db.QueryRowContext(ctx, createProject,
		arg.Title, arg.Slug, arg.Description, arg.FullDescription, arg.Category,
		arg.Location, arg.Year, arg.Client, arg.Surface, arg.Duration,
		arg.Image, arg.Gallery, arg.Testimonial, arg.Featured,
	), &p)
	return p, err
}

const updateProject = `
UPDATE projects
SET title = $2, description = $3, full_description = $4, category = $5, location = $6,
    year = $7, client = $8, surface = $9, duration = $10, gallery = $11,
    testimonial = $12, featured = $13, active = $14, updated_at = NOW()
WHERE id = $1
`

// UpdateProjectParams carries the mutable columns of a project.
type UpdateProjectParams struct {
	ID              int64
	Title           string
	Description     string
	FullDescription sql.NullString
	Category        string
	Location        string
	Year            int32
	Client          sql.NullString
	Surface         sql.NullString
	Duration        sql.NullString
	Gallery         pqtype.NullRawMessage
	Testimonial     pqtype.NullRawMessage
	Featured        bool
	Active          bool
}

// UpdateProject updates an existing project.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) error {
	_, err := q.db.ExecContext(ctx, updateProject,
		arg.ID, arg.Title, arg.Description, arg.FullDescription, arg.Category,
		arg.Location, arg.Year, arg.Client, arg.Surface, arg.Duration,
		arg.Gallery, arg.Testimonial, arg.Featured, arg.Active,
	)
	return err
}

const updateProjectImage = `
UPDATE projects SET image = $2, updated_at = NOW() WHERE id = $1
`

// UpdateProjectImageParams carries a replacement cover image URL.
type UpdateProjectImageParams struct {
	ID    int64
	Image string
}

// UpdateProjectImage replaces a project's cover image URL.
func (q *Queries) UpdateProjectImage(ctx context.Context, arg UpdateProjectImageParams) error {
	_, err := q.db.ExecContext(ctx, updateProjectImage, arg.ID, arg.Image)
	return err
}

const deleteProject = `
DELETE FROM projects WHERE id = $1
`

// DeleteProject removes a project.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteProject, id)
	return err
}

func collectProjects(rows *sql.Rows) ([]Project, error) {
	var projects []Project
	for rows.Next() {
		var p Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(s rowScanner, p *Project) error {
	return s.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.FullDescription,
		&p.Category, &p.Location, &p.Year, &p.Client, &p.Surface,
		&p.Duration, &p.Image, &p.Gallery, &p.Testimonial,
		&p.Featured, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
}
