package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// Login exchanges credentials for a user and bearer token.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := c.checkAuthThrottle(ctx); err != nil {
		return nil, err
	}
	var resp dto.AuthResponse
	if err := c.Call(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and returns its first session.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := c.checkAuthThrottle(ctx); err != nil {
		return nil, err
	}
	var resp dto.AuthResponse
	if err := c.Call(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DemoLogin starts a throwaway demo session.
func (c *Client) DemoLogin(ctx context.Context) (*dto.AuthResponse, error) {
	if err := c.checkAuthThrottle(ctx); err != nil {
		return nil, err
	}
	var resp dto.AuthResponse
	if err := c.Call(ctx, http.MethodPost, "/auth/demo-login", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user for the current token. Callers treat any failure as
// session invalidation.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.Call(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Health pings the unauthenticated health endpoint, which lives at the
// server root rather than under the API prefix. Used fire-and-forget to
// start warming a cold backend early, so it skips the retry machinery.
func (c *Client) Health(ctx context.Context) error {
	root := strings.TrimSuffix(c.baseURL, "/api")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, root+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
