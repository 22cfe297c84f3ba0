package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or ID matches no
	// stored record.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoUsersRegistered is returned by ListUsers when the collection
	// contains no records at all.
	ErrNoUsersRegistered = errors.New("no users registered")
)
