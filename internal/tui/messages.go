package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// NavigateTo switches the root router to another page. An optional Payload
// is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow. A nil Err means the root
// router quits the login program and hands the session over to the main loop.
type LoginResult struct {
	UserID   int64
	Username string
	Err      error
}

// RegisterResult reports the outcome of an async registration command.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu page after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type entriesLoadedMsg struct {
	entries []models.SavingEntry
	err     error
}

type goalsLoadedMsg struct {
	goals []models.Goal
	err   error
}

type entryAddedMsg struct {
	err error
}

type goalCreatedMsg struct {
	goal models.Goal
	err  error
}
