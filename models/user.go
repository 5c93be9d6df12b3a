package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the persistence layer at creation time.
	ID int64 `json:"-"`

	// Username is the unique login identifier chosen at signup.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It MUST never contain the plaintext password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
