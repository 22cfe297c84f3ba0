// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Pryandito

// Package adapter provides a client-side abstraction for communicating with
// the user-directory server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying protocol. The package currently ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/apryandito/user-directory/models"
)

// ServerAdapter defines transport-agnostic communication with the
// user-directory server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Returns an error if the
	// request fails or the server responds with a non-2xx status; validation
	// failures surface as a wrapped [ErrBadRequest] carrying the server's
	// field-level detail text.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns the raw token string.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// ListUsers fetches every registered user projected to public fields.
	// Returns a wrapped [ErrNotFound] when the directory is empty.
	ListUsers(ctx context.Context) ([]models.PublicUser, error)

	// GetUser fetches a single user by their numeric ID.
	GetUser(ctx context.Context, userID string) (models.PublicUser, error)

	// Me fetches the profile of the currently authenticated user. Requires a
	// valid bearer token to be set.
	Me(ctx context.Context) (models.PublicUser, error)
}
