package domain

import "time"

// Service is one of the company's lines of business as shown on the site.
type Service struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Slug        string    `json:"slug"`
	Active      bool      `json:"active"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceDetail is one content section of a service's detail page.
type ServiceDetail struct {
	ID        int64  `json:"id"`
	ServiceID int64  `json:"serviceId"`
	Section   string `json:"section"`
	Content   string `json:"content"`
	SortOrder int    `json:"order"`
}

// CreateServiceParams contains the fields for a new service entry.
type CreateServiceParams struct {
	Title       string
	Slug        string
	Description string
	Image       string
	SortOrder   int
}

// UpdateServiceParams contains the fields an administrator may change.
type UpdateServiceParams struct {
	ID          int64
	Title       string
	Description string
	Image       string
	Active      bool
	SortOrder   int
}

// Setting is a public site configuration entry. The snake_case JSON names
// match the existing frontend contract.
type Setting struct {
	Key    string `json:"setting_key"`
	Value  string `json:"setting_value"`
	Group  string `json:"setting_group"`
	Public bool   `json:"-"`
}
