package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

func newTestGoalRepo(t *testing.T) (*goalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := &goalRepository{
		db:     db,
		logger: db.logger,
	}
	return repo, mock
}

func TestCreateGoal_Success(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	goal := models.Goal{
		UserID:       3,
		Name:         "Vacation",
		TargetAmount: 500,
	}

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "goal_name", "target_amount", "achieved_amount"}).
		AddRow(1, goal.UserID, goal.Name, goal.TargetAmount, 0.0)

	mock.ExpectQuery("INSERT INTO goals").
		WithArgs(goal.UserID, goal.Name, goal.TargetAmount).
		WillReturnRows(rows)

	created, err := repo.CreateGoal(context.Background(), goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.AchievedAmount != 0 {
		t.Errorf("expected achieved amount 0, got %f", created.AchievedAmount)
	}
}

func TestCreateGoal_DBError(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectQuery("INSERT INTO goals").
		WillReturnError(errors.New("disk full"))

	_, err := repo.CreateGoal(context.Background(), models.Goal{UserID: 3, Name: "Vacation"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrScanningRow) {
		t.Errorf("expected ErrScanningRow, got %v", err)
	}
}

func TestGetGoalsByUser_Success(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "goal_name", "target_amount", "achieved_amount"}).
		AddRow(1, 3, "Vacation", 500.0, 100.0).
		AddRow(2, 3, "New laptop", 1200.0, 0.0)

	mock.ExpectQuery("SELECT (.+) FROM goals").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	goals, err := repo.GetGoalsByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].Name != "Vacation" || goals[0].AchievedAmount != 100 {
		t.Errorf("unexpected first goal: %+v", goals[0])
	}
}

func TestGetGoalsByUser_Empty(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "goal_name", "target_amount", "achieved_amount"})

	mock.ExpectQuery("SELECT (.+) FROM goals").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	goals, err := repo.GetGoalsByUser(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("expected no goals, got %d", len(goals))
	}
}

func TestGetGoalsByUser_QueryError(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM goals").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetGoalsByUser(context.Background(), 3)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetGoalsByUser_ScanError(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "goal_name", "target_amount", "achieved_amount"}).
		AddRow("not-an-int", 3, "Vacation", 500.0, 0.0)

	mock.ExpectQuery("SELECT (.+) FROM goals").
		WillReturnRows(rows)

	_, err := repo.GetGoalsByUser(context.Background(), 3)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestAddProgress_Success(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectExec("UPDATE goals").
		WithArgs(100.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddProgress(context.Background(), 1, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddProgress_GoalNotFound(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectExec("UPDATE goals").
		WithArgs(100.0, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddProgress(context.Background(), 404, 100)
	if !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestAddProgress_ExecError(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectExec("UPDATE goals").
		WillReturnError(errors.New("locked"))

	err := repo.AddProgress(context.Background(), 1, 100)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
