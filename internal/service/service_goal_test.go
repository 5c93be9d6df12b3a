package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/mock"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/utils"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

func newTestGoalSvc(t *testing.T, ctrl *gomock.Controller) (GoalService, *mock.MockGoalRepository) {
	t.Helper()
	mockGoals := mock.NewMockGoalRepository(ctrl)
	return NewGoalService(mockGoals, logger.Nop()), mockGoals
}

func TestGoalService_CreateGoal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGoals := newTestGoalSvc(t, ctrl)
	ctx := context.Background()

	mockGoals.EXPECT().
		CreateGoal(ctx, models.Goal{UserID: 1, Name: "Vacation", TargetAmount: 500}).
		Return(models.Goal{ID: 7, UserID: 1, Name: "Vacation", TargetAmount: 500}, nil)

	goal, err := svc.CreateGoal(ctx, 1, "Vacation", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(7), goal.ID)
	assert.Zero(t, goal.AchievedAmount)
}

func TestGoalService_CreateGoal_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestGoalSvc(t, ctrl)

	_, err := svc.CreateGoal(context.Background(), 1, "", 500)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// A zero or negative target is accepted here; range checks live in the
// input widgets.
func TestGoalService_CreateGoal_TargetNotRangeChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGoals := newTestGoalSvc(t, ctrl)
	ctx := context.Background()

	mockGoals.EXPECT().
		CreateGoal(ctx, models.Goal{UserID: 1, Name: "Rainy day", TargetAmount: 0}).
		Return(models.Goal{ID: 8, UserID: 1, Name: "Rainy day"}, nil)

	_, err := svc.CreateGoal(ctx, 1, "Rainy day", 0)
	require.NoError(t, err)
}

func TestGoalService_CreateGoal_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGoals := newTestGoalSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("disk is full")
	mockGoals.EXPECT().CreateGoal(ctx, gomock.Any()).Return(models.Goal{}, dbErr)

	_, err := svc.CreateGoal(ctx, 1, "Vacation", 500)
	assert.ErrorIs(t, err, dbErr)
}

func TestGoalService_ListGoals_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGoals := newTestGoalSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Goal{
		{ID: 1, UserID: 1, Name: "Vacation", TargetAmount: 500, AchievedAmount: 100},
		{ID: 2, UserID: 1, Name: "Car", TargetAmount: 10000},
	}
	mockGoals.EXPECT().GetGoalsByUser(ctx, int64(1)).Return(want, nil)

	goals, err := svc.ListGoals(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, goals)
}

func TestGoalService_ScopedToContextUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: a mismatched user must never reach the store.
	svc, _ := newTestGoalSvc(t, ctrl)
	ctx := context.WithValue(context.Background(), utils.UserIDCtxKey, int64(1))

	_, err := svc.CreateGoal(ctx, 2, "Vacation", 500)
	assert.ErrorIs(t, err, ErrWrongUser)

	_, err = svc.ListGoals(ctx, 2)
	assert.ErrorIs(t, err, ErrWrongUser)
}

func TestGoalService_ListGoals_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGoals := newTestGoalSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	mockGoals.EXPECT().GetGoalsByUser(ctx, int64(1)).Return(nil, dbErr)

	goals, err := svc.ListGoals(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, goals)
}
