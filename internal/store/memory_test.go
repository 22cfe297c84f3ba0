package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() UserRepository {
	return NewMemoryUserRepository(logger.Nop())
}

func testUser(email string) models.User {
	return models.User{
		FullName:     "John Doe",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Bio:          "about me",
		Dob:          "1990-01-02",
	}
}

func TestCreateUser_AssignsSequentialIDs(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, testUser("a@b.com"))
	require.NoError(t, err)
	second, err := repo.CreateUser(ctx, testUser("c@d.com"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, testUser("a@b.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, testUser("a@b.com"))
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	// the failed attempt must not have stored anything
	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUser_EmailMatchIsCaseSensitive(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, testUser("a@b.com"))
	require.NoError(t, err)

	// differs only in case, so it is a distinct email
	_, err = repo.CreateUser(ctx, testUser("A@b.com"))
	assert.NoError(t, err)
}

func TestFindUserByEmail(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, testUser("a@b.com"))
	require.NoError(t, err)

	found, err := repo.FindUserByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindUserByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, testUser("a@b.com"))
	require.NoError(t, err)

	found, err := repo.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindUserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_EmptyStore(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrNoUsersRegistered)
}

func TestListUsers_InsertionOrderAndCopy(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.CreateUser(ctx, testUser(fmt.Sprintf("user%d@b.com", i)))
		require.NoError(t, err)
	}

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "user0@b.com", users[0].Email)
	assert.Equal(t, "user2@b.com", users[2].Email)

	// mutating the returned slice must not leak into the store
	users[0].Email = "mutated@b.com"
	again, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user0@b.com", again[0].Email)
}

// TestCreateUser_ConcurrentSameEmail hammers CreateUser with the same email
// from many goroutines; exactly one registration may win.
func TestCreateUser_ConcurrentSameEmail(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, testUser("race@b.com"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrEmailAlreadyExists)
		}
	}
	assert.Equal(t, 1, succeeded)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
