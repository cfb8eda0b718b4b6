package domain

import (
	"time"

	"github.com/google/uuid"
)

// Devis statuses follow the back-office workflow.
const (
	DevisStatusNouveau = "nouveau"
	DevisStatusEnCours = "en_cours"
	DevisStatusTraite  = "traite"
	DevisStatusArchive = "archive"
)

// Devis is a persisted quote request. Unlike the other submission kinds it
// survives the request so the back office can track it.
type Devis struct {
	ID          int64           `json:"id"`
	DevisID     string          `json:"devisId"` // human-readable reference (DEV-nnnnnn)
	Nom         string          `json:"nom"`
	Prenom      string          `json:"prenom"`
	Email       string          `json:"email"`
	Telephone   string          `json:"telephone"`
	Adresse     string          `json:"adresse,omitempty"`
	ProjectType string          `json:"projectType"`
	Description string          `json:"description"`
	Budget      string          `json:"budget,omitempty"`
	Timeline    string          `json:"timeline,omitempty"`
	Cabinet     string          `json:"cabinet,omitempty"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	Documents   []DevisDocument `json:"documents,omitempty"`
	CreatedAt   time.Time       `json:"dateCreation"`
	UpdatedAt   time.Time       `json:"dateMiseAJour"`
}

// DevisDocument is a stored file attached to a quote request.
type DevisDocument struct {
	ID           uuid.UUID `json:"id"`
	DevisRef     string    `json:"devisId"`
	OriginalName string    `json:"originalName"`
	StorageKey   string    `json:"-"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimetype"`
	CreatedAt    time.Time `json:"createdAt"`
}
