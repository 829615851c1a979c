package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/services"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
	"github.com/finwealth4all/enoughfi-client/internal/utils/csvexport"
	"github.com/finwealth4all/enoughfi-client/internal/utils/fiscal"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// amount parses user-typed money, defaulting blank or malformed input to
// zero the same way the account balance field does.
func amount(s string) decimal.Decimal {
	return dto.BalanceFromString(s)
}

type accountsCmd struct {
	create  bool
	update  string
	delete  string
	name    string
	accType string
	subType string
	balance string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "List or edit ledger accounts." }
func (*accountsCmd) Usage() string {
	return "accounts [-create | -update <id> | -delete <id>] [-name <n> -type <t> -subtype <s> -balance <n>]\n"
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.create, "create", false, "create a new account")
	f.StringVar(&c.update, "update", "", "account id to update")
	f.StringVar(&c.delete, "delete", "", "account id to delete")
	f.StringVar(&c.name, "name", "", "account name")
	f.StringVar(&c.accType, "type", "Asset", "account type (Asset, Liability, Income, Expense, Equity)")
	f.StringVar(&c.subType, "subtype", "", "account sub-type")
	f.StringVar(&c.balance, "balance", "0", "current balance")
}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	if _, err := a.session.Bootstrap(ctx); err != nil {
		return fail(err)
	}
	ledger := services.NewLedgerService(a.api, a.api)

	switch {
	case c.delete != "":
		if err := ledger.DeleteAccount(ctx, c.delete); err != nil {
			return fail(err)
		}
		fmt.Println("Account deleted.")
		return subcommands.ExitSuccess

	case c.create || c.update != "":
		req := dto.SaveAccountRequest{
			Name:           c.name,
			AccountType:    domain.AccountType(c.accType),
			SubType:        c.subType,
			CurrentBalance: amount(c.balance),
		}
		acc, err := ledger.SaveAccount(ctx, c.update, req)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Saved %s (%s) balance %s\n", acc.Name, acc.AccountID, acc.CurrentBalance.StringFixed(2))
		return subcommands.ExitSuccess
	}

	if err := a.session.RefreshAccounts(ctx); err != nil {
		return fail(err)
	}
	for _, group := range services.GroupAccountsByType(a.session.Accounts()) {
		fmt.Printf("%s\n", group.Type)
		for _, acc := range group.Accounts {
			fmt.Printf("  %-36s %-24s %12s\n", acc.AccountID, acc.Name, acc.CurrentBalance.StringFixed(2))
		}
	}
	return subcommands.ExitSuccess
}

type txnsCmd struct {
	fy       int
	account  string
	category string
	search   string
	limit    int
	export   string
	summary  bool

	add      bool
	update   string
	delete   string
	date     string
	amount   string
	desc     string
	debit    string
	credit   string
}

func (*txnsCmd) Name() string     { return "txns" }
func (*txnsCmd) Synopsis() string { return "List, filter, edit, or export transactions." }
func (*txnsCmd) Usage() string {
	return "txns [-fy <year>] [-account <id>] [-category <c>] [-search <q>] [-export <file>] [-summary]\n" +
		"txns -add|-update <id> -date <yyyy-mm-dd> -amount <n> -debit <id> -credit <id> [-desc <d> -category <c>]\n" +
		"txns -delete <id>\n"
}

func (c *txnsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.fy, "fy", fiscal.Current(time.Now()), "financial year (starting calendar year)")
	f.StringVar(&c.account, "account", "", "filter by account id")
	f.StringVar(&c.category, "category", "", "filter by category, or category for -add")
	f.StringVar(&c.search, "search", "", "filter by description text")
	f.IntVar(&c.limit, "limit", 0, "maximum rows to return")
	f.StringVar(&c.export, "export", "", "write the result as CSV to this file")
	f.BoolVar(&c.summary, "summary", false, "show income/expense totals instead of rows")
	f.BoolVar(&c.add, "add", false, "create a transaction")
	f.StringVar(&c.update, "update", "", "transaction id to update")
	f.StringVar(&c.delete, "delete", "", "transaction id to delete")
	f.StringVar(&c.date, "date", time.Now().Format("2006-01-02"), "transaction date")
	f.StringVar(&c.amount, "amount", "", "transaction amount")
	f.StringVar(&c.desc, "desc", "", "description")
	f.StringVar(&c.debit, "debit", "", "debit account id")
	f.StringVar(&c.credit, "credit", "", "credit account id")
}

func (c *txnsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	if _, err := a.session.Bootstrap(ctx); err != nil {
		return fail(err)
	}
	ledger := services.NewLedgerService(a.api, a.api)
	start, end := fiscal.Range(c.fy)

	switch {
	case c.delete != "":
		if err := ledger.DeleteTransaction(ctx, c.delete); err != nil {
			return fail(err)
		}
		fmt.Println("Transaction deleted.")
		return subcommands.ExitSuccess

	case c.add || c.update != "":
		req := dto.SaveTransactionRequest{
			Date:            c.date,
			Amount:          amount(c.amount),
			Description:     c.desc,
			Category:        c.category,
			DebitAccountID:  c.debit,
			CreditAccountID: c.credit,
		}
		txn, err := ledger.SaveTransaction(ctx, c.update, req)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Saved transaction %s: %s on %s\n", txn.TransactionID, txn.Amount.StringFixed(2), txn.Date)
		return subcommands.ExitSuccess

	case c.summary:
		sum, err := ledger.Summary(ctx, start, end)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%s\n", fiscal.Label(c.fy))
		fmt.Printf("income:  %s\n", sum.Income.Total.StringFixed(2))
		fmt.Printf("expense: %s\n", sum.Expense.Total.StringFixed(2))
		return subcommands.ExitSuccess
	}

	txns, err := ledger.ListTransactions(ctx, dto.ListTransactionsParams{
		StartDate: start,
		EndDate:   end,
		AccountID: c.account,
		Category:  c.category,
		Search:    c.search,
		Limit:     c.limit,
	})
	if err != nil {
		return fail(err)
	}

	if c.export != "" {
		f, err := os.Create(c.export)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		if err := csvexport.Transactions(f, txns); err != nil {
			return fail(err)
		}
		fmt.Printf("Wrote %d transactions to %s\n", len(txns), c.export)
		return subcommands.ExitSuccess
	}

	fmt.Printf("%s: %d transactions\n", fiscal.Label(c.fy), len(txns))
	for _, t := range txns {
		fmt.Printf("%s  %10s  %-20s  %s -> %s\n",
			t.Date, t.Amount.StringFixed(2), t.Description, t.CreditAccountName, t.DebitAccountName)
	}
	return subcommands.ExitSuccess
}
