package store

import (
	"context"

	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// GoalRepository persists savings goals and their running progress.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	GetGoalsByUser(ctx context.Context, userID int64) ([]models.Goal, error)
	AddProgress(ctx context.Context, goalID int64, amount float64) error
}

// SavingsRepository is the append-only deposit ledger. AddEntry commits the
// entry insert and the linked goal's progress increment in one transaction.
type SavingsRepository interface {
	AddEntry(ctx context.Context, entry models.SavingEntry) (models.SavingEntry, error)
	GetEntriesByUser(ctx context.Context, userID int64) ([]models.SavingEntry, error)
}
