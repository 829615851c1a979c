package dto

import (
	"fmt"

	"github.com/finwealth4all/enoughfi-client/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct tag validation and wraps failures in
// apperrors.ErrValidation so callers can errors.Is on them.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
