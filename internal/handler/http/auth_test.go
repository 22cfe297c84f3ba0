// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Pryandito

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/service"
	"github.com/apryandito/user-directory/internal/store"
	"github.com/apryandito/user-directory/internal/utils"
	"github.com/apryandito/user-directory/internal/validators"
	"github.com/apryandito/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	listUsersFn func(ctx context.Context) ([]models.User, error)
	getUserFn   func(ctx context.Context, userIDParam string) (models.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userIDParam string) (models.User, error) {
	return m.getUserFn(ctx, userIDParam)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// newHandlerWithUsers builds a Handler with the given UserService mock.
func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	svcs := &service.Services{
		UserService: users,
	}
	return NewHandler(svcs, logger.Nop())
}

// requestBody serialises v to a JSON request body string.
func requestBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeResponse parses the recorded JSON envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// validRegister is a convenience fixture used across multiple tests.
var validRegister = models.RegisterRequest{
	FullName: "Jane Doe",
	Email:    "jane@example.com",
	Password: "Abcdefg1!",
	Bio:      "hello",
	Dob:      "1990-01-02",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegisterHandler_Success verifies that a valid registration request
// results in 201 Created and a confirmation message.
func TestRegisterHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{ID: 1, Email: req.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Registration success", resp.Message)
	assert.Empty(t, resp.Detail)
}

// TestRegisterHandler_InvalidJSON verifies that a malformed request body
// results in 400 Bad Request.
func TestRegisterHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegisterHandler_ValidationError verifies that a validation failure is
// reported as 400 with every failing field listed in the detail array.
func TestRegisterHandler_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, &validators.ValidationError{
				Fields: []models.FieldError{
					{Field: "email", Message: "Email is not valid"},
					{Field: "password", Message: "Password must be at least 8 characters"},
				},
			}
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Validation error", resp.Message)
	require.Len(t, resp.Detail, 2)
	assert.Equal(t, "email", resp.Detail[0].Field)
	assert.Equal(t, "password", resp.Detail[1].Field)
}

// TestRegisterHandler_DuplicateEmail verifies that a taken email address is
// reported as 400 with a dedicated message and no detail array.
func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Email already registered.", resp.Message)
	assert.Empty(t, resp.Detail)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLoginHandler_Success verifies that valid credentials result in 200 OK
// with the signed token inside the data payload.
func TestLoginHandler_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{ID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := requestBody(t, models.LoginRequest{Email: "jane@example.com", Password: "Abcdefg1!"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string           `json:"message"`
		Data    models.TokenData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Success", resp.Message)
	assert.Equal(t, signedToken, resp.Data.Token)
}

// TestLoginHandler_InvalidCredentials verifies that both an unknown email and
// a wrong password produce the same generic 401 response.
func TestLoginHandler_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := requestBody(t, models.LoginRequest{Email: "jane@example.com", Password: "Wrong-pass1!"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Login failed", resp.Message)
	assert.Empty(t, resp.Detail)
}

// TestLoginHandler_ValidationError verifies that login validation failures
// are reported as 400 with the detail array.
func TestLoginHandler_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, &validators.ValidationError{
				Fields: []models.FieldError{
					{Field: "password", Message: "Password is required"},
				},
			}
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := requestBody(t, models.LoginRequest{Email: "jane@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Validation error", resp.Message)
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, "password", resp.Detail[0].Field)
}

// TestLoginHandler_TokenCreationFailure verifies that a signing failure after
// successful authentication collapses to 500.
func TestLoginHandler_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{ID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := requestBody(t, models.LoginRequest{Email: "jane@example.com", Password: "Abcdefg1!"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

// TestMeHandler_Success verifies that the authenticated user's public profile
// is returned based on the user ID stored in the request context.
func TestMeHandler_Success(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, userIDParam string) (models.User, error) {
			require.Equal(t, "42", userIDParam)
			return models.User{
				ID:       42,
				FullName: "Jane Doe",
				Email:    "jane@example.com",
				Dob:      "1990-01-02",
			}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, int64(42)))
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Data    models.PublicUser `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Success", resp.Message)
	assert.Equal(t, "jane@example.com", resp.Data.Email)
}

// TestMeHandler_NoUserIDInContext verifies that the handler responds with 401
// when the context carries no user ID.
func TestMeHandler_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
