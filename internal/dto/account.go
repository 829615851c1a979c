package dto

import (
	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveAccountRequest defines the data for creating or editing an account.
// Edits reuse the same shape and validation as creation.
type SaveAccountRequest struct {
	Name           string             `json:"account_name" validate:"required"`
	AccountType    domain.AccountType `json:"account_type" validate:"required,oneof=Asset Liability Income Expense Equity"`
	SubType        string             `json:"sub_type"`
	CurrentBalance decimal.Decimal    `json:"current_balance"`
}

// BalanceFromString parses a user-entered balance, defaulting to zero when
// the input is not a number.
func BalanceFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
