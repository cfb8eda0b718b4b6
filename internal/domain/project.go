package domain

import "time"

// Project is a completed worksite showcased in the portfolio.
type Project struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	FullDescription string       `json:"fullDescription,omitempty"`
	Category        string       `json:"category"` // renovation, construction, extension, amenagement
	Location        string       `json:"location"`
	Year            int          `json:"year"`
	Client          string       `json:"client,omitempty"`
	Surface         string       `json:"surface,omitempty"`
	Duration        string       `json:"duration,omitempty"`
	Image           string       `json:"image"`
	Gallery         []string     `json:"gallery"`
	Testimonial     *Testimonial `json:"testimonial,omitempty"`
	Featured        bool         `json:"featured"`
	Active          bool         `json:"active"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// Testimonial is a client quote attached to a project.
type Testimonial struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// CreateProjectParams contains the fields for a new portfolio entry.
type CreateProjectParams struct {
	Title           string
	Slug            string
	Description     string
	FullDescription string
	Category        string
	Location        string
	Year            int
	Client          string
	Surface         string
	Duration        string
	Image           string
	Gallery         []string
	Testimonial     *Testimonial
	Featured        bool
}

// UpdateProjectParams contains the fields an administrator may change.
type UpdateProjectParams struct {
	ID              int64
	Title           string
	Description     string
	FullDescription string
	Category        string
	Location        string
	Year            int
	Client          string
	Surface         string
	Duration        string
	Gallery         []string
	Testimonial     *Testimonial
	Featured        bool
	Active          bool
}
