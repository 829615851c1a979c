package client

import (
	"context"
	"net/http"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// ListAccounts returns every account for the current user.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.Call(ctx, http.MethodGet, "/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount creates an account from an already-validated request.
func (c *Client) CreateAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error) {
	var account domain.Account
	if err := c.Call(ctx, http.MethodPost, "/accounts", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount replaces an account's fields.
func (c *Client) UpdateAccount(ctx context.Context, accountID string, req dto.SaveAccountRequest) (*domain.Account, error) {
	var account domain.Account
	if err := c.Call(ctx, http.MethodPut, "/accounts/"+accountID, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount removes an account.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	return c.Call(ctx, http.MethodDelete, "/accounts/"+accountID, nil, nil)
}
