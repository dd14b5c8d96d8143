package auth

import "errors"

// Domain errors surfaced by the workflow. The boundary maps each to a status
// and a fixed message; nothing else about a failure ever reaches the client.
var (
	// ErrMissingCredentials reports an empty email or password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrUserExists reports a signup against an already-registered email.
	// The message is deliberately generic so it leaks nothing beyond
	// existence of a conflict.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to prevent account
	// enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated reports a missing, unknown, or expired session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUserNotFound reports a live session whose account no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
