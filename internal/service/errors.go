package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown-user and wrong-password
	// cases so that login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrWrongUser is returned when a request targets a user other than the
	// one recorded in the context by the login flow.
	ErrWrongUser = errors.New("request is scoped to another user")
)
