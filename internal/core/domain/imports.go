package domain

import "github.com/shopspring/decimal"

// BatchState tracks the lifecycle of one upload's staged transactions.
type BatchState string

const (
	BatchUploaded  BatchState = "UPLOADED"
	BatchStaged    BatchState = "STAGED"
	BatchConfirmed BatchState = "CONFIRMED"
	BatchCleared   BatchState = "CLEARED"
)

// Terminal reports whether the batch can accept no further transitions.
func (s BatchState) Terminal() bool {
	return s == BatchConfirmed || s == BatchCleared
}

// ImportBatch is the unit of atomic confirm/clear for the staged
// transactions produced by one statement upload.
type ImportBatch struct {
	BatchID     string     `json:"batch_id"`
	StagedCount int        `json:"count"`
	State       BatchState `json:"-"`
}

// StagedTransaction is a parsed-but-unconfirmed transaction candidate
// awaiting user review. It is shaped like a Transaction so a confirm can
// promote it verbatim.
type StagedTransaction struct {
	StagedID        string          `json:"staged_id"`
	BatchID         string          `json:"batch_id"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	DebitAccountID  string          `json:"debit_account_id"`
	CreditAccountID string          `json:"credit_account_id"`
}
