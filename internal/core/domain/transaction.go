package domain

import "github.com/shopspring/decimal"

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// Transaction represents a double-entry movement: exactly one debit account
// and one credit account, with a positive amount.
type Transaction struct {
	TransactionID     string          `json:"transaction_id"`
	Date              string          `json:"date"` // DateLayout
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	DebitAccountID    string          `json:"debit_account_id"`
	CreditAccountID   string          `json:"credit_account_id"`
	DebitAccountName  string          `json:"debit_account_name,omitempty"`
	CreditAccountName string          `json:"credit_account_name,omitempty"`
}
