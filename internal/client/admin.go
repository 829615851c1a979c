package client

import (
	"context"
	"net/http"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
)

// AdminStats is the operator dashboard summary.
type AdminStats struct {
	UserCount        int `json:"user_count"`
	TransactionCount int `json:"transaction_count"`
	AccountCount     int `json:"account_count"`
}

// AdminUsers lists every registered user. Requires an admin session.
func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.Call(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminGetStats fetches aggregate usage numbers.
func (c *Client) AdminGetStats(ctx context.Context) (*AdminStats, error) {
	var stats AdminStats
	if err := c.Call(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminDeleteUser removes a user and their data.
func (c *Client) AdminDeleteUser(ctx context.Context, userID string) error {
	return c.Call(ctx, http.MethodDelete, "/admin/users/"+userID, nil, nil)
}

// AdminToggleAdmin flips a user's admin flag.
func (c *Client) AdminToggleAdmin(ctx context.Context, userID string) error {
	return c.Call(ctx, http.MethodPut, "/admin/users/"+userID+"/toggle-admin", nil, nil)
}
