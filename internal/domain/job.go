package domain

import "time"

// Job is a published job offer. JSON field names mirror the public API
// contract consumed by the site frontend.
type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Location        string    `json:"location"`
	Type            string    `json:"type"` // CDI, CDD, ...
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Salary          string    `json:"salary,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	Education       string    `json:"education,omitempty"`
	PublishDate     time.Time `json:"publishDate"`
	Featured        bool      `json:"featured"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateJobParams contains the fields an administrator supplies when
// publishing an offer. The slug is derived from the title when empty.
type CreateJobParams struct {
	Title           string
	Slug            string
	Location        string
	Type            string
	Category        string
	Description     string
	FullDescription string
	Salary          string
	Experience      string
	Education       string
	Featured        bool
}

// UpdateJobParams contains the fields an administrator may change.
type UpdateJobParams struct {
	ID              int64
	Title           string
	Location        string
	Type            string
	Category        string
	Description     string
	FullDescription string
	Salary          string
	Experience      string
	Education       string
	Featured        bool
	Active          bool
}
