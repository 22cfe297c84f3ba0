package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/apryandito/user-directory/internal/config"
	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/utils"
	"github.com/apryandito/user-directory/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.Server, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /auth/register. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login. On success the token is extracted from the response
// envelope and stored via SetToken. Returns an error if the request fails,
// the server returns a non-2xx status, or the response cannot be decoded.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var envelope struct {
		Data models.TokenData `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if envelope.Data.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(envelope.Data.Token)
	return envelope.Data.Token, nil
}

// ListUsers implements [ServerAdapter]. It GETs /users and decodes the public
// user list from the response envelope.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope struct {
		Data []models.PublicUser `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return envelope.Data, nil
}

// GetUser implements [ServerAdapter]. It GETs /users/{userId} and decodes the
// public user from the response envelope.
func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.PublicUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users/" + url.PathEscape(userID))
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	var envelope struct {
		Data models.PublicUser `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.PublicUser{}, fmt.Errorf("decode get user response: %w", err)
	}

	return envelope.Data, nil
}

// Me implements [ServerAdapter]. It GETs /auth/me with the stored bearer
// token and decodes the public profile of the authenticated user.
func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	var envelope struct {
		Data models.PublicUser `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.PublicUser{}, fmt.Errorf("decode me response: %w", err)
	}

	return envelope.Data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
