package repository

import (
	"context"
	"database/sql"
)

const listActiveJobs = `
SELECT id, title, slug, location, type, category, description, full_description,
       salary, experience, education, publish_date, featured, active, created_at, updated_at
FROM jobs
WHERE active = TRUE AND ($1 = '' OR category = $1)
ORDER BY featured DESC, publish_date DESC
`

// ListActiveJobs returns active offers, optionally filtered by category,
// featured first then most recent.
func (q *Queries) ListActiveJobs(ctx context.Context, category string) ([]Job, error) {
	rows, err := q.db.QueryContext(ctx, listActiveJobs, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := scanJob(rows, &j); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

const getJobBySlug = `
SELECT id, title, slug, location, type, category, description, full_description,
       salary, experience, education, publish_date, featured, active, created_at, updated_at
FROM jobs
WHERE slug = $1 AND active = TRUE
`

// GetJobBySlug returns an active offer by slug.
func (q *Queries) GetJobBySlug(ctx context.Context, slug string) (Job, error) {
	var j Job
	err := scanJobRow(q.db.QueryRowContext(ctx, getJobBySlug, slug), &j)
	return j, err
}

const getJobByID = `
SELECT id, title, slug, location, type, category, description, full_description,
       salary, experience, education, publish_date, featured, active, created_at, updated_at
FROM jobs
WHERE id = $1
`

// GetJobByID returns an offer by primary key regardless of active state.
func (q *Queries) GetJobByID(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := scanJobRow(q.db.QueryRowContext(ctx, getJobByID, id), &j)
	return j, err
}

const listSimilarJobs = `
SELECT id, title, slug, location, type, category, description, full_description,
       salary, experience, education, publish_date, featured, active, created_at, updated_at
FROM jobs
WHERE category = $1 AND slug <> $2 AND active = TRUE
ORDER BY featured DESC, publish_date DESC
LIMIT 3
`

// ListSimilarJobsParams identifies the offer to exclude and its category.
type ListSimilarJobsParams struct {
	Category string
	Slug     string
}

// ListSimilarJobs returns up to three other active offers in the same category.
func (q *Queries) ListSimilarJobs(ctx context.Context, arg ListSimilarJobsParams) ([]Job, error) {
	rows, err := q.db.QueryContext(ctx, listSimilarJobs, arg.Category, arg.Slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := scanJob(rows, &j); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

const createJob = `
INSERT INTO jobs (title, slug, location, type, category, description, full_description,
                  salary, experience, education, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, title, slug, location, type, category, description, full_description,
          salary, experience, education, publish_date, featured, active, created_at, updated_at
`

// CreateJobParams carries a new offer's columns.
type CreateJobParams struct {
	Title           string
	Slug            string
	Location        string
	Type            string
	Category        string
	Description     string
	FullDescription sql.NullString
	Salary          sql.NullString
	Experience      sql.NullString
	Education       sql.NullString
	Featured        bool
}

// CreateJob inserts a new offer and returns the stored row.
func (q *Queries) CreateJob(ctx context.Context, arg CreateJobParams) (Job, error) {
	var j Job
	err := scanJobRow(q.db.QueryRowContext(ctx, createJob,
		arg.Title, arg.Slug, arg.Location, arg.Type, arg.Category, arg.Description,
		arg.FullDescription, arg.Salary, arg.Experience, arg.Education, arg.Featured,
	), &j)
	return j, err
}

const updateJob = `
UPDATE jobs
SET title = $2, location = $3, type = $4, category = $5, description = $6,
    full_description = $7, salary = $8, experience = $9, education = $10,
    featured = $11, active = $12, updated_at = NOW()
WHERE id = $1
`

// UpdateJobParams carries the mutable columns of an offer.
type UpdateJobParams struct {
	ID              int64
	Title           string
	Location        string
	Type            string
	Category        string
	Description     string
	FullDescription sql.NullString
	Salary          sql.NullString
	Experience      sql.NullString
	Education       sql.NullString
	Featured        bool
	Active          bool
}

// UpdateJob updates an existing offer.
func (q *Queries) UpdateJob(ctx context.Context, arg UpdateJobParams) error {
	_, err := q.db.ExecContext(ctx, updateJob,
		arg.ID, arg.Title, arg.Location, arg.Type, arg.Category, arg.Description,
		arg.FullDescription, arg.Salary, arg.Experience, arg.Education,
		arg.Featured, arg.Active,
	)
	return err
}

const deleteJob = `
DELETE FROM jobs WHERE id = $1
`

// DeleteJob removes an offer.
func (q *Queries) DeleteJob(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteJob, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(s rowScanner, j *Job) error {
	return s.Scan(
		&j.ID, &j.Title, &j.Slug, &j.Location, &j.Type, &j.Category,
		&j.Description, &j.FullDescription, &j.Salary, &j.Experience,
		&j.Education, &j.PublishDate, &j.Featured, &j.Active,
		&j.CreatedAt, &j.UpdatedAt,
	)
}

func scanJobRow(row *sql.Row, j *Job) error {
	return scanJob(row, j)
}
