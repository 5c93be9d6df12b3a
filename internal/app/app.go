// Package app drives the interactive session: authenticate, run the
// dashboard, and start over after a logout.
package app

import (
	"context"
	"errors"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/tui"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/utils"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run executes one full session: login flow, then the main loop. A logout
// restarts the cycle with a fresh login; closing the program ends it.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	session, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	ctx = context.WithValue(ctx, utils.UserIDCtxKey, session.UserID)

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
