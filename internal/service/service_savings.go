package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/store"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// savingsService is the concrete implementation of SavingsService.
type savingsService struct {
	savingsRepository store.SavingsRepository
	logger            *logger.Logger

	// now is stubbed in tests to pin the entry date.
	now func() time.Time
}

func NewSavingsService(savingsRepository store.SavingsRepository, logger *logger.Logger) SavingsService {
	return &savingsService{
		savingsRepository: savingsRepository,
		logger:            logger,
		now:               time.Now,
	}
}

// AddEntry records a deposit dated today. When goalID is non-nil the
// repository also increments that goal's achieved amount in the same
// transaction; a missing goal surfaces as store.ErrGoalNotFound and nothing
// is written.
func (s *savingsService) AddEntry(ctx context.Context, userID int64, amount float64, goalID *int64) (models.SavingEntry, error) {
	log := logger.FromContext(ctx)

	if err := checkUserScope(ctx, userID); err != nil {
		log.Error().Int64("userID", userID).Msg("ledger insert requested for another user")
		return models.SavingEntry{}, err
	}

	addedEntry, err := s.savingsRepository.AddEntry(ctx, models.SavingEntry{
		UserID: userID,
		Date:   s.now(),
		Amount: amount,
		GoalID: goalID,
	})
	if err != nil {
		log.Err(err).Int64("userID", userID).Float64("amount", amount).Msg("ledger insert ended with error")
		return models.SavingEntry{}, fmt.Errorf("ledger insert ended with error: %w", err)
	}

	return addedEntry, nil
}

// ListEntries returns the user's full deposit history.
func (s *savingsService) ListEntries(ctx context.Context, userID int64) ([]models.SavingEntry, error) {
	log := logger.FromContext(ctx)

	if err := checkUserScope(ctx, userID); err != nil {
		log.Error().Int64("userID", userID).Msg("ledger listing requested for another user")
		return nil, err
	}

	entries, err := s.savingsRepository.GetEntriesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("ledger listing ended with error")
		return nil, fmt.Errorf("ledger listing ended with error: %w", err)
	}

	return entries, nil
}
