package tui

import (
	"errors"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/store"
)

// humanizeError maps well-known failures to the short messages shown on
// screen. Anything unrecognised is passed through as-is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return "username already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, store.ErrGoalNotFound):
		return "selected goal no longer exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "all fields are required"
	}

	return err.Error()
}
