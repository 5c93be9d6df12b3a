package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation on username → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash)

	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user record with the given username.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped in [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
