package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

type section int

const (
	sectionDashboard section = iota
	sectionAddSaving
	sectionSetGoal
	sectionViewGoals
)

// trendBarWidth caps the dashboard trend bars; the largest cumulative total
// always fills the full width.
const trendBarWidth = 30

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	session  *Session

	section section
	entries []models.SavingEntry
	goals   []models.Goal
	loading bool
	status  string
	errMsg  string

	entryTable  table.Model
	progressBar progress.Model

	amountInput   textinput.Model
	goalPickIdx   int // 0 selects no goal; i > 0 selects goals[i-1]
	addSubmitting bool
	addErr        string

	goalInputs     []textinput.Model
	goalFocus      int
	goalSubmitting bool
	goalErr        string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, session *Session) mainLoopModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Goal", Width: 22},
	}

	entryTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.Bold(true)
	entryTable.SetStyles(tableStyles)

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		session:     session,
		loading:     true,
		entryTable:  entryTable,
		progressBar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(trendBarWidth)),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadEntries(), m.cmdLoadGoals())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.refreshEntryTable()
		return m, nil
	case goalsLoadedMsg:
		if msg.err != nil {
			// A failed read degrades to an empty goal list; the error is
			// still surfaced on screen.
			m.errMsg = "error fetching goals: " + msg.err.Error()
			m.goals = nil
			m.refreshEntryTable()
			return m, nil
		}
		m.goals = msg.goals
		m.refreshEntryTable()
		return m, nil
	case entryAddedMsg:
		m.addSubmitting = false
		if msg.err != nil {
			m.addErr = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Deposit recorded"
		m.errMsg = ""
		m.resetAddForm()
		m.section = sectionDashboard
		m.loading = true
		return m, tea.Batch(m.cmdLoadEntries(), m.cmdLoadGoals())
	case goalCreatedMsg:
		m.goalSubmitting = false
		if msg.err != nil {
			m.goalErr = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Goal %q created", msg.goal.Name)
		m.errMsg = ""
		m.resetGoalForm()
		m.section = sectionDashboard
		return m, m.cmdLoadGoals()
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch m.section {
	case sectionAddSaving:
		return m.updateAddSaving(msg)
	case sectionSetGoal:
		return m.updateSetGoal(msg)
	case sectionViewGoals:
		return m.updateViewGoals(msg)
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.addSave):
		m.startAddSaving()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.setGoal):
		m.startSetGoal()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.goals):
		m.section = sectionViewGoals
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.entryTable, cmd = m.entryTable.Update(msg)
	return m, cmd
}

// ── Add Savings ──────────────────────────────────────────────────────────

func (m *mainLoopModel) startAddSaving() {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 14
	amount.Focus()

	m.amountInput = amount
	m.goalPickIdx = 0
	m.addSubmitting = false
	m.addErr = ""
	m.section = sectionAddSaving
}

func (m mainLoopModel) updateAddSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.section = sectionDashboard
			return m, nil
		case key.Matches(keyMsg, keys.up):
			if m.goalPickIdx > 0 {
				m.goalPickIdx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.goalPickIdx < len(m.goals) {
				m.goalPickIdx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.addSubmitting {
				return m, nil
			}

			amount, err := strconv.ParseFloat(strings.TrimSpace(m.amountInput.Value()), 64)
			if err != nil || amount <= 0 {
				m.addErr = "Amount must be a positive number"
				return m, nil
			}

			var goalID *int64
			if m.goalPickIdx > 0 {
				goalID = &m.goals[m.goalPickIdx-1].ID
			}

			m.addErr = ""
			m.addSubmitting = true
			return m, m.cmdAddEntry(amount, goalID)
		}
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) resetAddForm() {
	m.amountInput.SetValue("")
	m.goalPickIdx = 0
	m.addErr = ""
}

// ── Set Goals ────────────────────────────────────────────────────────────

func (m *mainLoopModel) startSetGoal() {
	name := textinput.New()
	name.Placeholder = "goal name"
	name.CharLimit = 40
	name.Width = 40
	name.Focus()

	target := textinput.New()
	target.Placeholder = "0.00"
	target.CharLimit = 12
	target.Width = 14

	m.goalInputs = []textinput.Model{name, target}
	m.goalFocus = 0
	m.goalSubmitting = false
	m.goalErr = ""
	m.section = sectionSetGoal
}

func (m mainLoopModel) updateSetGoal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.section = sectionDashboard
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.goalInputs[m.goalFocus].Blur()
			m.goalFocus = (m.goalFocus + 1) % len(m.goalInputs)
			m.goalInputs[m.goalFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.goalInputs[m.goalFocus].Blur()
			m.goalFocus = (m.goalFocus - 1 + len(m.goalInputs)) % len(m.goalInputs)
			m.goalInputs[m.goalFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.goalSubmitting {
				return m, nil
			}

			name := strings.TrimSpace(m.goalInputs[0].Value())
			if name == "" {
				m.goalErr = "Goal name is required"
				return m, nil
			}

			target, err := strconv.ParseFloat(strings.TrimSpace(m.goalInputs[1].Value()), 64)
			if err != nil || target <= 0 {
				m.goalErr = "Target must be a positive number"
				return m, nil
			}

			m.goalErr = ""
			m.goalSubmitting = true
			return m, m.cmdCreateGoal(name, target)
		}
	}

	var cmd tea.Cmd
	m.goalInputs[m.goalFocus], cmd = m.goalInputs[m.goalFocus].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) resetGoalForm() {
	m.goalInputs = nil
	m.goalFocus = 0
	m.goalErr = ""
}

// ── View Goals ───────────────────────────────────────────────────────────

func (m mainLoopModel) updateViewGoals(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.quit) {
		m.section = sectionDashboard
	}
	return m, nil
}

// ── Views ────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.section {
	case sectionAddSaving:
		return m.viewAddSaving()
	case sectionSetGoal:
		return m.viewSetGoal()
	case sectionViewGoals:
		return m.viewGoals()
	}
	return m.viewDashboard()
}

func (m mainLoopModel) viewDashboard() string {
	hotKeys := "a: add savings │ g: set goal │ v: view goals │ l: log out │ ↑/↓: navigate │ q: quit"

	if m.loading {
		return renderPage("DASHBOARD", "Loading...", hotKeys)
	}

	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render("Status: " + m.status))
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Hello, %s! Total saved: %s\n\n", m.session.Username, formatMoney(m.totalSaved())))

	if len(m.entries) == 0 {
		b.WriteString("No savings recorded yet\n")
	} else {
		b.WriteString(m.entryTable.View())
		b.WriteString("\n\n")
		b.WriteString(m.viewTrend())
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// viewTrend draws cumulative totals per calendar day as horizontal bars,
// most recent days last.
func (m mainLoopModel) viewTrend() string {
	perDay := make(map[string]float64)
	for _, entry := range m.entries {
		perDay[entry.Date.Format(models.DateLayout)] += entry.Amount
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var cumulative float64
	totals := make([]float64, len(days))
	for i, day := range days {
		cumulative += perDay[day]
		totals[i] = cumulative
	}

	// Keep the trend readable: only the last days fit on screen.
	const maxDays = 7
	if len(days) > maxDays {
		days = days[len(days)-maxDays:]
		totals = totals[len(totals)-maxDays:]
	}

	peak := totals[len(totals)-1]
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	b.WriteString("Savings trend:\n")
	for i, day := range days {
		width := int(totals[i] / peak * trendBarWidth)
		if width < 1 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("%s │ %s %s\n", day, strings.Repeat("▇", width), formatMoney(totals[i])))
	}

	return b.String()
}

func (m mainLoopModel) viewAddSaving() string {
	var b strings.Builder

	b.WriteString("Amount    │ [")
	b.WriteString(m.amountInput.View())
	b.WriteString("]\n\n")

	b.WriteString("Link to goal:\n")
	for i, label := range m.goalPickLabels() {
		cursor := " "
		if i == m.goalPickIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, label))
	}

	if m.addSubmitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.addErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.addErr))
		b.WriteString("\n")
	}

	return renderPage("ADD SAVINGS", strings.TrimRight(b.String(), "\n"), "↑/↓: pick goal │ enter: save │ esc: back")
}

func (m mainLoopModel) goalPickLabels() []string {
	labels := make([]string, 0, len(m.goals)+1)
	labels = append(labels, "None")
	for _, goal := range m.goals {
		labels = append(labels, fmt.Sprintf("%s (Target: %s)", fitText(goal.Name, 24), formatMoney(goal.TargetAmount)))
	}
	return labels
}

func (m mainLoopModel) viewSetGoal() string {
	var b strings.Builder

	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼──────────────────────────────────────────\n")
	b.WriteString("Name     │ [")
	b.WriteString(m.goalInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Target   │ [")
	b.WriteString(m.goalInputs[1].View())
	b.WriteString("]\n")

	if m.goalSubmitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}

	if m.goalErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.goalErr))
		b.WriteString("\n")
	}

	return renderPage("SET GOAL", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: create │ esc: back")
}

func (m mainLoopModel) viewGoals() string {
	if len(m.goals) == 0 {
		return renderPage("MY GOALS", "No goals set yet", "esc: back")
	}

	var b strings.Builder
	for _, goal := range m.goals {
		b.WriteString(fmt.Sprintf("%s  %s of %s (%d%%)\n",
			fitText(goal.Name, 24),
			formatMoney(goal.AchievedAmount),
			formatMoney(goal.TargetAmount),
			goal.ProgressPercent(),
		))
		b.WriteString(m.progressBar.ViewAs(goal.Progress()))
		b.WriteString("\n\n")
	}

	return renderPage("MY GOALS", strings.TrimRight(b.String(), "\n"), "esc: back")
}

// ── Commands and helpers ─────────────────────────────────────────────────

func (m *mainLoopModel) refreshEntryTable() {
	goalNames := make(map[int64]string, len(m.goals))
	for _, goal := range m.goals {
		goalNames[goal.ID] = goal.Name
	}

	rows := make([]table.Row, 0, len(m.entries))
	for _, entry := range m.entries {
		goalCell := "-"
		if entry.GoalID != nil {
			if name, ok := goalNames[*entry.GoalID]; ok {
				goalCell = fitText(name, 20)
			} else {
				goalCell = fmt.Sprintf("#%d", *entry.GoalID)
			}
		}

		rows = append(rows, table.Row{
			entry.Date.Format(models.DateLayout),
			formatMoney(entry.Amount),
			goalCell,
		})
	}

	m.entryTable.SetRows(rows)
}

func (m mainLoopModel) totalSaved() float64 {
	var total float64
	for _, entry := range m.entries {
		total += entry.Amount
	}
	return total
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SavingsService
	userID := m.activeUserID()

	return func() tea.Msg {
		entries, err := svc.ListEntries(ctx, userID)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdLoadGoals() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GoalService
	userID := m.activeUserID()

	return func() tea.Msg {
		goals, err := svc.ListGoals(ctx, userID)
		return goalsLoadedMsg{goals: goals, err: err}
	}
}

func (m mainLoopModel) cmdAddEntry(amount float64, goalID *int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SavingsService
	userID := m.activeUserID()

	return func() tea.Msg {
		_, err := svc.AddEntry(ctx, userID, amount, goalID)
		return entryAddedMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreateGoal(name string, target float64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GoalService
	userID := m.activeUserID()

	return func() tea.Msg {
		goal, err := svc.CreateGoal(ctx, userID, name, target)
		return goalCreatedMsg{goal: goal, err: err}
	}
}

func (m mainLoopModel) activeUserID() int64 {
	return m.session.UserID
}
