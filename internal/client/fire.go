package client

import (
	"context"
	"net/http"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// FireSnapshot fetches the server-computed FIRE summary.
func (c *Client) FireSnapshot(ctx context.Context) (*domain.FireSnapshot, error) {
	var snapshot domain.FireSnapshot
	if err := c.Call(ctx, http.MethodGet, "/fire/snapshot", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// FireImpact asks how a hypothetical change moves the projection.
func (c *Client) FireImpact(ctx context.Context, req dto.FireImpactRequest) (*dto.FireImpactResponse, error) {
	var resp dto.FireImpactResponse
	if err := c.Call(ctx, http.MethodPost, "/fire/impact", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AskFi sends one advisor chat turn.
func (c *Client) AskFi(ctx context.Context, message string) (*dto.AskFiResponse, error) {
	req := dto.AskFiRequest{Message: message}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var resp dto.AskFiResponse
	if err := c.Call(ctx, http.MethodPost, "/ask-fi", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AskFiHistory returns the persisted advisor conversation.
func (c *Client) AskFiHistory(ctx context.Context) ([]dto.ChatMessage, error) {
	var history []dto.ChatMessage
	if err := c.Call(ctx, http.MethodGet, "/ask-fi/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ClearAskFiHistory deletes the advisor conversation.
func (c *Client) ClearAskFiHistory(ctx context.Context) error {
	return c.Call(ctx, http.MethodDelete, "/ask-fi/history", nil, nil)
}
