package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite3/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations for the given dialect.
// Supported dialects are "sqlite3" and "postgres"; each has its own
// migration directory embedded in the binary.
//
// Running Migrate against an up-to-date database is a no-op: goose tracks
// applied versions in its own table, so repeated invocations neither
// duplicate columns nor fail.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
