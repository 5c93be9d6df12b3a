package store

import (
	"context"
	"fmt"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/config"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	UserRepository    UserRepository
	GoalRepository    GoalRepository
	SavingsRepository SavingsRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens the database selected by cfg.DB.DSN (SQLite file by default,
//     PostgreSQL for postgres:// URIs), creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories
//     sharing the single connection handle.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		GoalRepository:    NewGoalRepository(db, logger),
		SavingsRepository: NewSavingsRepository(db, logger),
	}, nil
}
