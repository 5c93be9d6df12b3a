package store

import (
	"context"
	"fmt"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// goalRepository is the SQL-backed implementation of [GoalRepository].
type goalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGoalRepository constructs a [GoalRepository] backed by the provided
// database connection and logger.
func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("creating goal repository")
	return &goalRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGoal persists a new goal owned by goal.UserID. The achieved amount
// starts at 0 (column default); the populated record is returned via a
// RETURNING clause. Target amounts are not validated here — the calling
// surface enforces its own input rules.
func (r *goalRepository) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createGoal, goal.UserID, goal.Name, goal.TargetAmount)

	if err := row.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.AchievedAmount); err != nil {
		log.Err(err).Str("func", "*goalRepository.CreateGoal").Msg("error: inserting goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return goal, nil
}

// GetGoalsByUser returns all goals owned by userID in storage order.
func (r *goalRepository) GetGoalsByUser(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGoalsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.GetGoalsByUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.GetGoalsByUser").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err = rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.AchievedAmount); err != nil {
			log.Err(err).Str("func", "*goalRepository.GetGoalsByUser").Msg("error: scanning goal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, nil
}

// AddProgress adds amount to the goal's achieved total as a single UPDATE.
// Atomic with respect to the goal row; the transactional pairing with a
// ledger insert lives in [SavingsRepository.AddEntry].
func (r *goalRepository) AddProgress(ctx context.Context, goalID int64, amount float64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, incrementGoalProgress, amount, goalID)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.AddProgress").Msg("error: updating goal progress")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}

	return nil
}
