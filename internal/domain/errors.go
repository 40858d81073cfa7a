package domain

import "errors"

var (
	// ErrEmailExists means signup hit an email that is already registered.
	ErrEmailExists = errors.New("email exists")

	// ErrUserNotFound means no user row matches the given email.
	ErrUserNotFound = errors.New("user not found")
)
