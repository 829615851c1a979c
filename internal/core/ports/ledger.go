package ports

import (
	"context"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// AccountAPIFacade is the account CRUD surface of the backend.
type AccountAPIFacade interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CreateAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.SaveAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// TransactionAPIFacade is the transaction surface of the backend.
type TransactionAPIFacade interface {
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	Summary(ctx context.Context, startDate, endDate string) (*dto.SummaryResponse, error)
	CreateTransaction(ctx context.Context, req dto.SaveTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	QuickAdd(ctx context.Context, req dto.QuickAddRequest) error
}
