package service

import (
	"context"
	"testing"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/store"
	"github.com/apryandito/user-directory/internal/validators"
	"github.com/apryandito/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(repo store.UserRepository) UserService {
	return NewUserService(repo, validators.NewUserValidator(), logger.Nop())
}

func TestListUsers_Success(t *testing.T) {
	want := []models.User{
		{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"},
		{ID: 2, FullName: "John Roe", Email: "john@example.com"},
	}
	repo := &mockUserRepository{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return want, nil
		},
	}

	got, err := newUserService(repo).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListUsers_Empty(t *testing.T) {
	repo := &mockUserRepository{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, store.ErrNoUsersRegistered
		},
	}

	_, err := newUserService(repo).ListUsers(context.Background())
	assert.ErrorIs(t, err, store.ErrNoUsersRegistered)
}

func TestGetUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			if id == 7 {
				return models.User{ID: 7, Email: "jane@example.com"}, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	users := newUserService(repo)

	tests := []struct {
		name        string
		userIDParam string
		wantErr     error
		wantID      int64
	}{
		{
			name:        "existing user",
			userIDParam: "7",
			wantID:      7,
		},
		{
			name:        "unknown id",
			userIDParam: "8",
			wantErr:     store.ErrUserNotFound,
		},
		{
			name:        "id larger than int64 is treated as unknown",
			userIDParam: "99999999999999999999999999",
			wantErr:     store.ErrUserNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			user, err := users.GetUser(context.Background(), test.userIDParam)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantID, user.ID)
		})
	}
}

func TestGetUser_NonNumericParam(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("FindUserByID must not be called for a non-numeric parameter")
			return models.User{}, nil
		},
	}

	_, err := newUserService(repo).GetUser(context.Background(), "abc")

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
}
