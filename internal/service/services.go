package service

import (
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/store"
)

// Services bundles every application service behind one handle.
type Services struct {
	AuthService    AuthService
	GoalService    GoalService
	SavingsService SavingsService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		GoalService:    NewGoalService(storages.GoalRepository, logger),
		SavingsService: NewSavingsService(storages.SavingsRepository, logger),
	}
}
