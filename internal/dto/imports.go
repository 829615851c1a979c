package dto

import "github.com/shopspring/decimal"

// UploadResponse is returned by POST /import/upload. Older deployments
// report the staged row count as staged_count; TotalStaged merges both.
type UploadResponse struct {
	BatchID     string `json:"batch_id"`
	Count       int    `json:"count"`
	StagedCount int    `json:"staged_count"`
}

// TotalStaged returns whichever count field the server populated.
func (r UploadResponse) TotalStaged() int {
	if r.Count > 0 {
		return r.Count
	}
	return r.StagedCount
}

// StagedUpdate carries partial field updates for staged records. Pointer
// fields distinguish "not provided" from zero values.
type StagedUpdate struct {
	Date            *string          `json:"date,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Category        *string          `json:"category,omitempty"`
	DebitAccountID  *string          `json:"debit_account_id,omitempty"`
	CreditAccountID *string          `json:"credit_account_id,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u StagedUpdate) Empty() bool {
	return u.Date == nil && u.Amount == nil && u.Description == nil &&
		u.Category == nil && u.DebitAccountID == nil && u.CreditAccountID == nil
}

// BulkStagedUpdateRequest applies the same updates to every listed record.
type BulkStagedUpdateRequest struct {
	IDs     []string     `json:"ids" validate:"required,min=1"`
	Updates StagedUpdate `json:"updates"`
}

// ConfirmImportRequest names the batch to commit atomically.
type ConfirmImportRequest struct {
	BatchID string `json:"batch_id" validate:"required"`
}
