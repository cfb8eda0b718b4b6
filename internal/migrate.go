package internal

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// The catalog and devis schema ships with the binary; migrations run at
// startup before any query is issued.
//
//go:embed migrations/*.sql
var migrations embed.FS

// RunMigrations applies any pending schema migrations.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Up(db, "migrations")
}
