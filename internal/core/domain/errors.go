package domain

import "errors"

var (
	ErrMalformedRequest   = errors.New("malformed request")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	// ErrInconsistentState marks a token whose username has no user record.
	// It is logged and reported, never returned to clients.
	ErrInconsistentState = errors.New("inconsistent state")
)
