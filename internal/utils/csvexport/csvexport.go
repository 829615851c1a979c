// Package csvexport writes transaction lists as CSV for the settings
// screen's data export.
package csvexport

import (
	"encoding/csv"
	"io"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
)

var header = []string{"Date", "Amount", "Description", "Category", "Debit", "Credit"}

// Transactions writes txns as CSV with a header row.
func Transactions(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range txns {
		record := []string{
			t.Date,
			t.Amount.String(),
			t.Description,
			t.Category,
			t.DebitAccountName,
			t.CreditAccountName,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
