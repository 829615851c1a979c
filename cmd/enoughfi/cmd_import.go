package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/services"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
	"github.com/finwealth4all/enoughfi-client/internal/utils/fiscal"
	"github.com/google/subcommands"
)

type importCmd struct {
	file     string
	password string

	batch    string
	staged   bool
	confirm  bool
	clear    bool
	clearAll bool

	edit     string
	bulk     bool
	date     string
	amount   string
	desc     string
	category string
	debit    string
	credit   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "Upload bank statements and reconcile staged rows." }
func (*importCmd) Usage() string {
	return "import -file <statement.pdf> [-password <p>]\n" +
		"import -batch <id> -staged | -confirm | -clear\n" +
		"import -batch <id> -edit <staged-id> [-date d] [-amount n] [-desc d] [-category c] [-debit id] [-credit id]\n" +
		"import -clear-all\n"
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "statement file to upload")
	f.StringVar(&c.password, "password", "", "statement password, if protected")
	f.StringVar(&c.batch, "batch", "", "staged batch id")
	f.BoolVar(&c.staged, "staged", false, "list the batch's staged rows")
	f.BoolVar(&c.confirm, "confirm", false, "commit the whole batch as transactions")
	f.BoolVar(&c.clear, "clear", false, "discard the batch's staged rows")
	f.BoolVar(&c.clearAll, "clear-all", false, "discard staged rows across all batches")
	f.StringVar(&c.edit, "edit", "", "staged row id to edit")
	f.StringVar(&c.date, "date", "", "new date")
	f.StringVar(&c.amount, "amount", "", "new amount")
	f.StringVar(&c.desc, "desc", "", "new description")
	f.StringVar(&c.category, "category", "", "new category")
	f.StringVar(&c.debit, "debit", "", "new debit account id")
	f.StringVar(&c.credit, "credit", "", "new credit account id")
}

func (c *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	if _, err := a.session.Bootstrap(ctx); err != nil {
		return fail(err)
	}
	// After a confirm or clear the server owns the outcome; re-fetch the
	// transaction list and balances rather than synthesizing rows locally.
	imports := services.NewImportService(a.api, func(ctx context.Context) {
		start, end := fiscal.Range(fiscal.Current(time.Now()))
		txns, err := a.api.ListTransactions(ctx, dto.ListTransactionsParams{StartDate: start, EndDate: end})
		if err != nil {
			a.logger.Warn("transaction refresh after import failed", "error", err.Error())
		} else {
			fmt.Printf("Ledger now has %d transactions this financial year.\n", len(txns))
		}
		if err := a.session.RefreshAccounts(ctx); err != nil {
			a.logger.Warn("account refresh after import failed", "error", err.Error())
		}
	})

	switch {
	case c.file != "":
		f, err := os.Open(c.file)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		batch, err := imports.Upload(ctx, filepath.Base(c.file), f, c.password)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Staged %d rows in batch %s; review with `import -batch %s -staged`\n",
			batch.StagedCount, batch.BatchID, batch.BatchID)
		return subcommands.ExitSuccess

	case c.clearAll:
		if err := imports.ClearAll(ctx); err != nil {
			return fail(err)
		}
		fmt.Println("All staged rows discarded.")
		return subcommands.ExitSuccess
	}

	if c.batch == "" {
		return fail(fmt.Errorf("-batch is required"))
	}
	batch := &domain.ImportBatch{BatchID: c.batch, State: domain.BatchStaged}

	switch {
	case c.edit != "":
		updates := c.updates()
		row, err := imports.EditStaged(ctx, batch, c.edit, updates)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Updated %s: %s %s %s\n", row.StagedID, row.Date, row.Amount.StringFixed(2), row.Description)
		return subcommands.ExitSuccess

	case c.confirm:
		if err := imports.Confirm(ctx, batch); err != nil {
			return fail(err)
		}
		fmt.Println("Batch confirmed; staged rows are now transactions.")
		return subcommands.ExitSuccess

	case c.clear:
		if err := imports.Clear(ctx, batch); err != nil {
			return fail(err)
		}
		fmt.Println("Batch cleared; no transactions were created.")
		return subcommands.ExitSuccess
	}

	rows, err := imports.Staged(ctx, batch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("batch %s: %d staged rows\n", c.batch, len(rows))
	for _, r := range rows {
		fmt.Printf("%s  %s  %10s  %-20s  [%s]\n", r.StagedID, r.Date, r.Amount.StringFixed(2), r.Description, r.Category)
	}
	return subcommands.ExitSuccess
}

func (c *importCmd) updates() dto.StagedUpdate {
	u := dto.StagedUpdate{}
	if c.date != "" {
		u.Date = &c.date
	}
	if c.amount != "" {
		v := amount(c.amount)
		u.Amount = &v
	}
	if c.desc != "" {
		u.Description = &c.desc
	}
	if c.category != "" {
		u.Category = &c.category
	}
	if c.debit != "" {
		u.DebitAccountID = &c.debit
	}
	if c.credit != "" {
		u.CreditAccountID = &c.credit
	}
	return u
}
