package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/config"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver it was opened
// with. The driver name decides the migration dialect and how driver-level
// errors are classified.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens the database backend selected by the DSN: a
// "postgres://" (or "postgresql://") URI connects to PostgreSQL, anything
// else is treated as a local SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	dialect := "sqlite3"
	if db.driver == "pgx" {
		dialect = "postgres"
	}

	return migrations.Migrate(db.DB, dialect)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
