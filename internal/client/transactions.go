package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// ListTransactions returns transactions matching the filters. The server
// historically returned either a bare array or {"transactions": [...]};
// both shapes are accepted.
func (c *Client) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	path := "/transactions"
	if q := params.Query().Encode(); q != "" {
		path += "?" + q
	}
	var raw json.RawMessage
	if err := c.Call(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var txns []domain.Transaction
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &txns); err != nil {
			return nil, fmt.Errorf("decoding transaction list: %w", err)
		}
		return txns, nil
	}
	var wrapped struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding transaction list: %w", err)
	}
	return wrapped.Transactions, nil
}

// Summary returns income/expense aggregates for a date range.
func (c *Client) Summary(ctx context.Context, startDate, endDate string) (*dto.SummaryResponse, error) {
	path := fmt.Sprintf("/transactions/summary?start_date=%s&end_date=%s", startDate, endDate)
	var summary dto.SummaryResponse
	if err := c.Call(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateTransaction posts a new double-entry transaction.
func (c *Client) CreateTransaction(ctx context.Context, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := c.Call(ctx, http.MethodPost, "/transactions", req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction replaces an existing transaction's fields.
func (c *Client) UpdateTransaction(ctx context.Context, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := c.Call(ctx, http.MethodPut, "/transactions/"+transactionID, req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	return c.Call(ctx, http.MethodDelete, "/transactions/"+transactionID, nil, nil)
}

// QuickAdd records an expense with server-inferred accounts.
func (c *Client) QuickAdd(ctx context.Context, req dto.QuickAddRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	return c.Call(ctx, http.MethodPost, "/quick-add", req, nil)
}
