// Package store implements the data-access layer of the user directory.
//
// The only storage backend is an in-process, process-lifetime collection of
// user records. Records are created through registration and destroyed only
// when the process exits; no update or delete operations exist.
package store

import (
	"context"

	"github.com/apryandito/user-directory/models"
)

// UserRepository is the data-access contract for user records.
type UserRepository interface {
	// CreateUser assigns the next sequential ID to user, appends it to the
	// collection and returns the stored record. Returns
	// ErrEmailAlreadyExists when a record with the same email (exact,
	// case-sensitive match) is already present; nothing is stored in that
	// case.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the record whose email exactly matches email,
	// or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the record with the given identifier, or
	// ErrUserNotFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all records in insertion order. Returns
	// ErrNoUsersRegistered when the collection is empty.
	ListUsers(ctx context.Context) ([]models.User, error)
}
