package dto

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// SaveTransactionRequest defines the data for creating or editing a
// double-entry transaction. The debit and credit accounts must differ.
type SaveTransactionRequest struct {
	Date            string          `json:"date" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	DebitAccountID  string          `json:"debit_account_id" validate:"required"`
	CreditAccountID string          `json:"credit_account_id" validate:"required,nefield=DebitAccountID"`
}

// ListTransactionsParams are the query filters for GET /transactions.
type ListTransactionsParams struct {
	StartDate string
	EndDate   string
	AccountID string
	Category  string
	Search    string
	Limit     int
	Offset    int
}

// Query encodes the set filters as URL query parameters.
func (p ListTransactionsParams) Query() url.Values {
	q := url.Values{}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	if p.AccountID != "" {
		q.Set("account_id", p.AccountID)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

// AccountTotal is one row of a summary breakdown.
type AccountTotal struct {
	AccountName string          `json:"account_name"`
	Total       decimal.Decimal `json:"total"`
}

// SummarySide aggregates one side (income or expense) of a summary.
type SummarySide struct {
	Total     decimal.Decimal `json:"total"`
	ByAccount []AccountTotal  `json:"by_account"`
}

// SummaryResponse is returned by GET /transactions/summary.
type SummaryResponse struct {
	Income  SummarySide `json:"income"`
	Expense SummarySide `json:"expense"`
}

// QuickAddRequest is the minimal payload for POST /quick-add; the server
// infers accounts from the category.
type QuickAddRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
}
