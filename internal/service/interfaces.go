package service

import (
	"context"

	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages user accounts and credential checks.
type AuthService interface {
	Register(ctx context.Context, username string, password string) (models.User, error)
	Login(ctx context.Context, username string, password string) (models.User, error)
}

// GoalService manages savings goals for a user.
type GoalService interface {
	CreateGoal(ctx context.Context, userID int64, name string, targetAmount float64) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
}

// SavingsService records deposits and lists a user's ledger.
type SavingsService interface {
	AddEntry(ctx context.Context, userID int64, amount float64, goalID *int64) (models.SavingEntry, error)
	ListEntries(ctx context.Context, userID int64) ([]models.SavingEntry, error)
}
