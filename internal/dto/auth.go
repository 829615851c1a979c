package dto

import "github.com/finwealth4all/enoughfi-client/internal/core/domain"

// LoginRequest defines the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest defines the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by login, register and demo-login.
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
