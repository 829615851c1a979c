package dto

import "github.com/finwealth4all/enoughfi-client/internal/core/domain"

// OnboardingStatus is returned by GET /onboarding. Complete is the flag
// bootstrap branches on; the profile is echoed back when one exists.
type OnboardingStatus struct {
	Complete bool                      `json:"complete"`
	Skipped  bool                      `json:"skipped"`
	Profile  *domain.OnboardingProfile `json:"profile,omitempty"`
}
