package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/apperrors"
	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/ports"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// LedgerService enforces the edit invariants for accounts and double-entry
// transactions before anything reaches the wire. Validation failures never
// produce a network call.
type LedgerService struct {
	accountAPI ports.AccountAPIFacade
	txnAPI     ports.TransactionAPIFacade
}

// NewLedgerService creates a LedgerService over the account and transaction
// facades.
func NewLedgerService(accounts ports.AccountAPIFacade, txns ports.TransactionAPIFacade) *LedgerService {
	return &LedgerService{accountAPI: accounts, txnAPI: txns}
}

// ValidateAccount checks the account submit contract: non-empty name and one
// of the five enumerated types. Balance needs no check; BalanceFromString
// already defaulted unparseable input to zero.
func (s *LedgerService) ValidateAccount(req dto.SaveAccountRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	if !req.AccountType.Valid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	return nil
}

// SaveAccount creates the account when accountID is empty, else updates it.
// Edits reuse the same validation as creation.
func (s *LedgerService) SaveAccount(ctx context.Context, accountID string, req dto.SaveAccountRequest) (*domain.Account, error) {
	if err := s.ValidateAccount(req); err != nil {
		return nil, err
	}
	if accountID == "" {
		return s.accountAPI.CreateAccount(ctx, req)
	}
	return s.accountAPI.UpdateAccount(ctx, accountID, req)
}

// DeleteAccount removes an account. Destructive; any confirmation dialog is
// a UI concern, not this layer's.
func (s *LedgerService) DeleteAccount(ctx context.Context, accountID string) error {
	return s.accountAPI.DeleteAccount(ctx, accountID)
}

// ValidateTransaction checks the transaction submit contract: date, positive
// amount, and two distinct account references all present. Category and
// description are free text.
func (s *LedgerService) ValidateTransaction(req dto.SaveTransactionRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return fmt.Errorf("%w: date must be %s", apperrors.ErrValidation, domain.DateLayout)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.DebitAccountID == req.CreditAccountID {
		return fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}
	return nil
}

// SaveTransaction creates the transaction when transactionID is empty, else
// updates it.
func (s *LedgerService) SaveTransaction(ctx context.Context, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	if err := s.ValidateTransaction(req); err != nil {
		return nil, err
	}
	if transactionID == "" {
		return s.txnAPI.CreateTransaction(ctx, req)
	}
	return s.txnAPI.UpdateTransaction(ctx, transactionID, req)
}

// DeleteTransaction removes a transaction.
func (s *LedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.txnAPI.DeleteTransaction(ctx, transactionID)
}

// ListTransactions returns transactions matching the filters.
func (s *LedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	return s.txnAPI.ListTransactions(ctx, params)
}

// Summary returns income/expense aggregates for a date range.
func (s *LedgerService) Summary(ctx context.Context, startDate, endDate string) (*dto.SummaryResponse, error) {
	return s.txnAPI.Summary(ctx, startDate, endDate)
}

// AccountGroup is one account-type bucket in presentation order.
type AccountGroup struct {
	Type     domain.AccountType
	Accounts []domain.Account
}

// GroupAccountsByType buckets accounts by type for the debit/credit pickers.
// It biases users toward sound selections but deliberately does not
// cross-validate that a debit/credit type pair makes accounting sense.
func GroupAccountsByType(accounts []domain.Account) []AccountGroup {
	byType := make(map[domain.AccountType][]domain.Account)
	for _, a := range accounts {
		byType[a.AccountType] = append(byType[a.AccountType], a)
	}
	groups := make([]AccountGroup, 0, len(byType))
	for _, t := range domain.AccountTypes {
		if accs, ok := byType[t]; ok {
			groups = append(groups, AccountGroup{Type: t, Accounts: accs})
		}
	}
	return groups
}
