package ports

import (
	"context"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// OnboardingAPIFacade is the onboarding surface of the backend.
type OnboardingAPIFacade interface {
	GetOnboarding(ctx context.Context) (*dto.OnboardingStatus, error)
	SaveOnboarding(ctx context.Context, profile domain.OnboardingProfile) error
	SkipOnboarding(ctx context.Context) error
}

// FireAPIFacade is the FIRE analytics surface of the backend.
type FireAPIFacade interface {
	FireSnapshot(ctx context.Context) (*domain.FireSnapshot, error)
}
