package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders three text inputs (username, password, and password confirmation)
// and dispatches an async registration command on form submission.
// On success a [RegisterResult] message is produced; the model then resets
// the form and navigates back to the menu, passing a [RegisterSuccessNotice]
// payload.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with three pre-configured text
// inputs. The username field receives focus immediately; the password fields
// use masked echo.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "username"
	fields[0].CharLimit = 20
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] — clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the menu.
//   - esc              — cancels and navigates back to the menu.
//   - tab              — moves focus to the next input.
//   - shift+tab        — moves focus to the previous input.
//   - enter            — validates inputs (all required; passwords must match)
//     and dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			repeat := m.inputs[2].Value()

			if username == "" || pass == "" || repeat == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column
// table with all three input fields, a submission indicator, and an optional
// error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼──────────────────────────────────\n")
	b.WriteString("Username         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_, err := auth.Register(ctx, username, pass)
		return RegisterResult{
			Err:      err,
			Username: username,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
