package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Income    AccountType = "Income"
	Expense   AccountType = "Expense"
	Equity    AccountType = "Equity"
)

// AccountTypes lists the five kinds in presentation order.
var AccountTypes = []AccountType{Asset, Liability, Income, Expense, Equity}

// Valid reports whether t is one of the five enumerated kinds.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Income, Expense, Equity:
		return true
	}
	return false
}

// Account represents a financial account within the ledger.
// CurrentBalance is server-derived; the client never computes it locally.
type Account struct {
	AccountID      string          `json:"account_id"`
	Name           string          `json:"account_name"`
	AccountType    AccountType     `json:"account_type"`
	SubType        string          `json:"sub_type"` // optional, e.g. "Bank", "Salary"
	CurrentBalance decimal.Decimal `json:"current_balance"`
}
