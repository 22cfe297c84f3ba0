package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/store"
	"github.com/apryandito/user-directory/internal/validators"
	"github.com/apryandito/user-directory/models"
)

// userService is the concrete implementation of UserService.
// It serves read-only queries; all mutation of the record collection goes
// through AuthService.Register.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository and validator.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListUsers returns every registered user in registration order.
//
// Returns a wrapped store.ErrNoUsersRegistered when the directory is empty.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// GetUser resolves the raw userId path parameter and returns the matching
// user record.
//
// The parameter must be numeric text; a *validators.ValidationError is
// returned otherwise. A syntactically valid ID with no matching record
// yields a wrapped store.ErrUserNotFound.
func (u *userService) GetUser(ctx context.Context, userIDParam string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, userIDParam); err != nil {
		log.Debug().Err(err).Str("userId", userIDParam).Msg("invalid userId path parameter")
		return models.User{}, err
	}

	userID, err := strconv.ParseInt(userIDParam, 10, 64)
	if err != nil {
		log.Debug().Err(err).Str("userId", userIDParam).Msg("userId does not fit int64")
		return models.User{}, fmt.Errorf("user search by id failed: %w", store.ErrUserNotFound)
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Debug().Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
