package service

import "errors"

// Error taxonomy sentinels. Services wrap these with context via fmt.Errorf
// and %w; handlers map them to HTTP status codes with errors.Is. Anything
// not matching a sentinel is a storage/internal failure surfaced as a
// generic 500 (detail stays in the server log).
var (
	// ErrValidation marks malformed or rejected input (400).
	ErrValidation = errors.New("invalid request")
	// ErrInvalidCredentials is the uniform login failure (401). It never
	// distinguishes an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden marks a role mismatch on an admin-scoped operation (403).
	ErrForbidden = errors.New("access denied")
	// ErrNotFound covers both truly missing records and records owned by
	// another user, so existence is never leaked (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate value for a unique field (409).
	ErrConflict = errors.New("already exists")
)
