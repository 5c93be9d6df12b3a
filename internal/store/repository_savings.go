package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// savingsRepository is the SQL-backed implementation of [SavingsRepository].
type savingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSavingsRepository constructs a [SavingsRepository] backed by the
// provided database connection and logger.
func NewSavingsRepository(db *DB, logger *logger.Logger) SavingsRepository {
	logger.Debug().Msg("creating savings repository")
	return &savingsRepository{
		db:     db,
		logger: logger,
	}
}

// AddEntry appends a deposit to the ledger. When the entry is linked to a
// goal, the goal's achieved amount is incremented in the same transaction:
// both writes commit together or neither does. An increment that matches no
// goal row aborts the transaction with [ErrGoalNotFound].
func (r *savingsRepository) AddEntry(ctx context.Context, entry models.SavingEntry) (models.SavingEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*savingsRepository.AddEntry").Msg("error: beginning transaction")
		return models.SavingEntry{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, insertSavingEntry,
		entry.UserID,
		entry.Date.Format(models.DateLayout),
		entry.Amount,
		entry.GoalID,
	)
	if err = row.Scan(&entry.ID); err != nil {
		log.Err(err).Str("func", "*savingsRepository.AddEntry").Msg("error: inserting ledger entry")
		return models.SavingEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if entry.GoalID != nil {
		res, err := tx.ExecContext(ctx, incrementGoalProgress, entry.Amount, *entry.GoalID)
		if err != nil {
			log.Err(err).Str("func", "*savingsRepository.AddEntry").Msg("error: incrementing goal progress")
			return models.SavingEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return models.SavingEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return models.SavingEntry{}, ErrGoalNotFound
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*savingsRepository.AddEntry").Msg("error: committing transaction")
		return models.SavingEntry{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return entry, nil
}

// GetEntriesByUser returns all ledger entries owned by userID in storage
// order.
func (r *savingsRepository) GetEntriesByUser(ctx context.Context, userID int64) ([]models.SavingEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*savingsRepository.GetEntriesByUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*savingsRepository.GetEntriesByUser").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.SavingEntry
	for rows.Next() {
		var (
			entry   models.SavingEntry
			rawDate string
			goalID  sql.NullInt64
		)
		if err = rows.Scan(&entry.ID, &entry.UserID, &rawDate, &entry.Amount, &goalID); err != nil {
			log.Err(err).Str("func", "*savingsRepository.GetEntriesByUser").Msg("error: scanning ledger row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.Date, err = time.Parse(models.DateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if goalID.Valid {
			entry.GoalID = &goalID.Int64
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
