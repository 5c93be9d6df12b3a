package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createGoal = `INSERT INTO goals (user_id, goal_name, target_amount)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, goal_name, target_amount, achieved_amount;`

	incrementGoalProgress = `UPDATE goals
    SET achieved_amount = achieved_amount + $1
    WHERE id = $2;`

	insertSavingEntry = `INSERT INTO savings (user_id, date, amount, goal_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`
)

// buildSelectGoalsQuery builds the per-user goal listing query. No ORDER BY:
// results come back in storage order, which for append-only tables is
// insertion order.
func buildSelectGoalsQuery(userID int64) (string, []any, error) {
	return sq.Select(
		"id",
		"user_id",
		"goal_name",
		"target_amount",
		"achieved_amount",
	).
		From("goals").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSelectEntriesQuery builds the per-user savings ledger listing query.
func buildSelectEntriesQuery(userID int64) (string, []any, error) {
	return sq.Select(
		"id",
		"user_id",
		"date",
		"amount",
		"goal_id",
	).
		From("savings").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
