// Package ports defines the API facade interfaces the workflow services
// consume, keeping them independent of the concrete HTTP client and
// mockable in tests.
package ports

import (
	"context"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// AuthAPIFacade is the authentication surface of the backend.
type AuthAPIFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	DemoLogin(ctx context.Context) (*dto.AuthResponse, error)
	Me(ctx context.Context) (*domain.User, error)
}
