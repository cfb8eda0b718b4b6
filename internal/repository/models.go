package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

// Service mirrors the services table.
type Service struct {
	ID          int64
	Title       string
	Description string
	Image       sql.NullString
	Slug        string
	Active      bool
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceDetail mirrors the service_details table.
type ServiceDetail struct {
	ID        int64
	ServiceID int64
	Section   string
	Content   string
	SortOrder int32
}

// Project mirrors the projects table. Gallery and Testimonial are JSONB
// columns decoded by the service layer.
type Project struct {
	ID              int64
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
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Job mirrors the jobs table.
type Job struct {
	ID              int64
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
	PublishDate     time.Time
	Featured        bool
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Devis mirrors the devis table.
type Devis struct {
	ID          int64
	DevisID     string
	Nom         string
	Prenom      string
	Email       string
	Telephone   string
	Adresse     sql.NullString
	ProjectType string
	Description string
	Budget      sql.NullString
	Timeline    sql.NullString
	Cabinet     sql.NullString
	Status      string
	Notes       sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DevisDocument mirrors the devis_documents table.
type DevisDocument struct {
	ID           uuid.UUID
	DevisRef     string
	OriginalName string
	StorageKey   string
	Size         int64
	MimeType     string
	CreatedAt    time.Time
}

// SiteSetting mirrors the site_settings table.
type SiteSetting struct {
	SettingKey   string
	SettingValue string
	SettingGroup string
	IsPublic     bool
}
