// Package service implements the business logic of the user directory:
// registration, authentication, token lifecycle, and user queries.
// Services sit between the HTTP transport layer and the store, and own all
// input validation and credential handling.
package service

import (
	"context"

	"github.com/apryandito/user-directory/models"
)

// AuthService covers account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// Register validates req, hashes the password, and stores a new user.
	// Returns a *validators.ValidationError when any field rule fails and
	// store.ErrEmailAlreadyExists (wrapped) when the email is taken; no
	// record is created on any failure path.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login validates req and verifies the credentials. An unknown email
	// and a wrong password both yield ErrInvalidCredentials so that callers
	// cannot probe which emails are registered.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT asserting the user's identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies and decodes a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers read-only queries over the registered users.
type UserService interface {
	// ListUsers returns all users in registration order, or
	// store.ErrNoUsersRegistered (wrapped) when none exist.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser resolves the raw userId path parameter and returns the
	// matching user. Returns a *validators.ValidationError when the
	// parameter is not numeric and store.ErrUserNotFound (wrapped) when no
	// record has that ID.
	GetUser(ctx context.Context, userIDParam string) (models.User, error)
}
