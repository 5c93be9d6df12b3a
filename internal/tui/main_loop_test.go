package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/mock"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

func newTestMainLoop(t *testing.T, ctrl *gomock.Controller) (mainLoopModel, *mock.MockGoalService, *mock.MockSavingsService) {
	t.Helper()

	mockGoals := mock.NewMockGoalService(ctrl)
	mockSavings := mock.NewMockSavingsService(ctrl)
	services := &service.Services{
		GoalService:    mockGoals,
		SavingsService: mockSavings,
	}

	session := &Session{ID: "test-session", UserID: 1, Username: "alice"}
	return newMainLoopModel(context.Background(), services, session), mockGoals, mockSavings
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testEntries() []models.SavingEntry {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	goalID := int64(7)
	return []models.SavingEntry{
		{ID: 1, UserID: 1, Date: day, Amount: 100, GoalID: &goalID},
		{ID: 2, UserID: 1, Date: day, Amount: 50},
	}
}

func TestMainLoop_DashboardShowsEntriesAndTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(entriesLoadedMsg{entries: testEntries()})
	m = updated.(mainLoopModel)
	updated, _ = m.Update(goalsLoadedMsg{goals: []models.Goal{{ID: 7, Name: "Vacation", TargetAmount: 500, AchievedAmount: 100}}})
	m = updated.(mainLoopModel)

	view := m.View()
	assert.Contains(t, view, "Total saved: $150.00")
	assert.Contains(t, view, "2026-08-29")
	assert.Contains(t, view, "Vacation")
	assert.Contains(t, view, "Savings trend:")
}

func TestMainLoop_GoalsReadFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(entriesLoadedMsg{entries: testEntries()})
	m = updated.(mainLoopModel)
	updated, _ = m.Update(goalsLoadedMsg{goals: []models.Goal{{ID: 7, Name: "Vacation"}}})
	m = updated.(mainLoopModel)

	updated, _ = m.Update(goalsLoadedMsg{err: errors.New("disk is full")})
	m = updated.(mainLoopModel)

	assert.Empty(t, m.goals)
	assert.Contains(t, m.View(), "error fetching goals: disk is full")
}

func TestMainLoop_AddSavingRejectsBadAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(keyRune('a'))
	m = updated.(mainLoopModel)
	require.Equal(t, sectionAddSaving, m.section)

	for _, bad := range []string{"", "abc", "-5", "0"} {
		m.amountInput.SetValue(bad)
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(mainLoopModel)
		assert.Nil(t, cmd, "no command must be dispatched for input %q", bad)
		assert.Equal(t, "Amount must be a positive number", m.addErr)
	}
}

func TestMainLoop_AddSavingSubmitsLinkedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockSavings := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(goalsLoadedMsg{goals: []models.Goal{{ID: 7, Name: "Vacation", TargetAmount: 500}}})
	m = updated.(mainLoopModel)

	updated, _ = m.Update(keyRune('a'))
	m = updated.(mainLoopModel)

	labels := m.goalPickLabels()
	require.Equal(t, []string{"None", "Vacation (Target: $500.00)"}, labels)

	// Pick the goal below "None".
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(mainLoopModel)

	m.amountInput.SetValue("100")
	mockSavings.EXPECT().AddEntry(gomock.Any(), int64(1), 100.0, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ float64, goalID *int64) (models.SavingEntry, error) {
			require.NotNil(t, goalID)
			assert.Equal(t, int64(7), *goalID)
			return models.SavingEntry{ID: 11}, nil
		},
	)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	assert.True(t, m.addSubmitting)

	msg := cmd()
	added, ok := msg.(entryAddedMsg)
	require.True(t, ok)
	assert.NoError(t, added.err)
}

func TestMainLoop_SetGoalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(keyRune('g'))
	m = updated.(mainLoopModel)
	require.Equal(t, sectionSetGoal, m.section)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)
	assert.Equal(t, "Goal name is required", m.goalErr)

	m.goalInputs[0].SetValue("Vacation")
	m.goalInputs[1].SetValue("oops")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)
	assert.Equal(t, "Target must be a positive number", m.goalErr)
}

func TestMainLoop_SetGoalSubmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockGoals, _ := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(keyRune('g'))
	m = updated.(mainLoopModel)

	m.goalInputs[0].SetValue("Vacation")
	m.goalInputs[1].SetValue("500")

	mockGoals.EXPECT().CreateGoal(gomock.Any(), int64(1), "Vacation", 500.0).
		Return(models.Goal{ID: 7, Name: "Vacation", TargetAmount: 500}, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)

	msg := cmd()
	created, ok := msg.(goalCreatedMsg)
	require.True(t, ok)
	require.NoError(t, created.err)

	// On success the dashboard reloads the goal list.
	mockGoals.EXPECT().ListGoals(gomock.Any(), int64(1)).Return(nil, nil)
	updated, cmd = m.Update(created)
	m = updated.(mainLoopModel)
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, sectionDashboard, m.section)
	assert.Contains(t, m.status, `Goal "Vacation" created`)
}

func TestMainLoop_ViewGoalsCapsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMainLoop(t, ctrl)

	updated, _ := m.Update(goalsLoadedMsg{goals: []models.Goal{
		{ID: 1, Name: "Vacation", TargetAmount: 100, AchievedAmount: 250},
	}})
	m = updated.(mainLoopModel)

	updated, _ = m.Update(keyRune('v'))
	m = updated.(mainLoopModel)
	require.Equal(t, sectionViewGoals, m.section)

	view := m.View()
	assert.Contains(t, view, "$250.00 of $100.00")
	assert.Contains(t, view, "(100%)")
}

func TestMainLoop_LogoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestMainLoop(t, ctrl)

	updated, cmd := m.Update(keyRune('l'))
	m = updated.(mainLoopModel)

	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
