package client

import (
	"context"
	"net/http"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// GetOnboarding fetches the completeness flag and any saved profile.
func (c *Client) GetOnboarding(ctx context.Context) (*dto.OnboardingStatus, error) {
	var status dto.OnboardingStatus
	if err := c.Call(ctx, http.MethodGet, "/onboarding", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SaveOnboarding persists the whole profile in one call.
func (c *Client) SaveOnboarding(ctx context.Context, profile domain.OnboardingProfile) error {
	return c.Call(ctx, http.MethodPost, "/onboarding", profile, nil)
}

// SkipOnboarding marks onboarding as explicitly skipped server-side.
func (c *Client) SkipOnboarding(ctx context.Context) error {
	return c.Call(ctx, http.MethodPut, "/onboarding/skip", nil, nil)
}
