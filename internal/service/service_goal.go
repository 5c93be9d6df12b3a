package service

import (
	"context"
	"fmt"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/store"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// goalService is the concrete implementation of GoalService.
type goalService struct {
	goalRepository store.GoalRepository
	logger         *logger.Logger
}

func NewGoalService(goalRepository store.GoalRepository, logger *logger.Logger) GoalService {
	return &goalService{
		goalRepository: goalRepository,
		logger:         logger,
	}
}

// CreateGoal inserts a new goal with the achieved amount starting at zero.
// The target amount is accepted as given; range checks belong to the input
// widgets that collect it.
func (g *goalService) CreateGoal(ctx context.Context, userID int64, name string, targetAmount float64) (models.Goal, error) {
	log := logger.FromContext(ctx)

	if err := checkUserScope(ctx, userID); err != nil {
		log.Error().Int64("userID", userID).Msg("goal creation requested for another user")
		return models.Goal{}, err
	}

	if name == "" {
		log.Error().Int64("userID", userID).Msg("empty goal name provided")
		return models.Goal{}, ErrInvalidDataProvided
	}

	createdGoal, err := g.goalRepository.CreateGoal(ctx, models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
	})
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("name", name).Msg("goal creation ended with error")
		return models.Goal{}, fmt.Errorf("goal creation ended with error: %w", err)
	}

	return createdGoal, nil
}

// ListGoals returns every goal owned by the user.
func (g *goalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	if err := checkUserScope(ctx, userID); err != nil {
		log.Error().Int64("userID", userID).Msg("goal listing requested for another user")
		return nil, err
	}

	goals, err := g.goalRepository.GetGoalsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("goal listing ended with error")
		return nil, fmt.Errorf("goal listing ended with error: %w", err)
	}

	return goals, nil
}
