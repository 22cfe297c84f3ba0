// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Pryandito

package store

import (
	"context"
	"sync"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/models"
)

// memoryUserRepository keeps all user records in process memory.
//
// The uniqueness check and the append in CreateUser happen under a single
// mutex hold. Password hashing runs before CreateUser is called, so two
// concurrent registrations with the same email cannot both pass the
// uniqueness check.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  []models.User
	nextID int64

	logger *logger.Logger
}

// NewMemoryUserRepository creates an empty in-memory user repository.
// IDs start at 1 and increase by one per created record.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("in-memory UserRepository created")
	return &memoryUserRepository{
		nextID: 1,
		logger: logger,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)

	r.logger.Debug().Int64("id", user.ID).Msg("user record created")

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.users) == 0 {
		return nil, ErrNoUsersRegistered
	}

	// defensive copy so callers cannot mutate the stored slice
	users := make([]models.User, len(r.users))
	copy(users, r.users)

	return users, nil
}
