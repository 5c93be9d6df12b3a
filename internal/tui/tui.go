package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// ErrUserQuit is returned when the user closes the program from the login
// flow instead of authenticating.
var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow runs the menu/login/register pages until the user authenticates
// or quits. On success it returns a fresh Session for the main loop.
func (t *TUI) LoginFlow(ctx context.Context) (*Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}

	session := newSession(result.resultUserID, result.resultUsername)
	t.logger.Info().
		Str("session", session.ID).
		Str("username", session.Username).
		Msg("user logged in")

	return session, nil
}

// MainLoop runs the dashboard program for an authenticated session. It
// reports whether the user chose to log out (true) or to quit (false).
func (t *TUI) MainLoop(ctx context.Context, session *Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.logger.Info().Str("session", session.ID).Msg("user logged out")
	}
	return result.logout, nil
}
