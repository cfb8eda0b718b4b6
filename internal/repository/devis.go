package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createDevis = `
INSERT INTO devis (devis_id, nom, prenom, email, telephone, adresse,
                   project_type, description, budget, timeline, cabinet)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, devis_id, nom, prenom, email, telephone, adresse, project_type,
          description, budget, timeline, cabinet, status, notes, created_at, updated_at
`

// CreateDevisParams carries a new quote request's columns.
type CreateDevisParams struct {
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
}

// CreateDevis inserts a quote request and returns the stored row.
func (q *Queries) CreateDevis(ctx context.Context, arg CreateDevisParams) (Devis, error) {
	var d Devis
	err := q.db.QueryRowContext(ctx, createDevis,
		arg.DevisID, arg.Nom, arg.Prenom, arg.Email, arg.Telephone, arg.Adresse,
		arg.ProjectType, arg.Description, arg.Budget, arg.Timeline, arg.Cabinet,
	).Scan(
		&d.ID, &d.DevisID, &d.Nom, &d.Prenom, &d.Email, &d.Telephone,
		&d.Adresse, &d.ProjectType, &d.Description, &d.Budget, &d.Timeline,
		&d.Cabinet, &d.Status, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

const createDevisDocument = `
INSERT INTO devis_documents (id, devis_ref, original_name, storage_key, size, mime_type)
VALUES ($1, $2, $3, $4, $5, $6)
`

// CreateDevisDocumentParams carries one stored attachment row.
type CreateDevisDocumentParams struct {
	ID           uuid.UUID
	DevisRef     string
	OriginalName string
	StorageKey   string
	Size         int64
	MimeType     string
}

// CreateDevisDocument records one stored attachment for a quote request.
func (q *Queries) CreateDevisDocument(ctx context.Context, arg CreateDevisDocumentParams) error {
	_, err := q.db.ExecContext(ctx, createDevisDocument,
		arg.ID, arg.DevisRef, arg.OriginalName, arg.StorageKey, arg.Size, arg.MimeType)
	return err
}

const listDevisDocuments = `
SELECT id, devis_ref, original_name, storage_key, size, mime_type, created_at
FROM devis_documents
WHERE devis_ref = $1
ORDER BY created_at
`

// ListDevisDocuments returns the stored attachments of a quote request.
func (q *Queries) ListDevisDocuments(ctx context.Context, devisRef string) ([]DevisDocument, error) {
	rows, err := q.db.QueryContext(ctx, listDevisDocuments, devisRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []DevisDocument
	for rows.Next() {
		var d DevisDocument
		if err := rows.Scan(&d.ID, &d.DevisRef, &d.OriginalName, &d.StorageKey,
			&d.Size, &d.MimeType, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
