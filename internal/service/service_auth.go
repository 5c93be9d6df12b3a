package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/store"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

// authService is the concrete implementation of AuthService. Passwords are
// stored as bcrypt hashes; the plain text never reaches the repository.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a storage-assigned ID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameTaken if the username is already registered.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			log.Error().Str("username", username).Msg("username already exists")
			return models.User{}, err
		}

		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// against the supplied password. An unknown username and a wrong password
// both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
