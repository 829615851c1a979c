package services_test

import (
	"context"
	"io"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthAPIFacade ---
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthAPI) DemoLogin(ctx context.Context) (*dto.AuthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthAPI) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock AccountAPIFacade ---
type MockAccountAPI struct {
	mock.Mock
}

func (m *MockAccountAPI) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountAPI) CreateAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountAPI) UpdateAccount(ctx context.Context, accountID string, req dto.SaveAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountAPI) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock TransactionAPIFacade ---
type MockTransactionAPI struct {
	mock.Mock
}

func (m *MockTransactionAPI) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionAPI) Summary(ctx context.Context, startDate, endDate string) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}

func (m *MockTransactionAPI) CreateTransaction(ctx context.Context, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionAPI) UpdateTransaction(ctx context.Context, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionAPI) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionAPI) QuickAdd(ctx context.Context, req dto.QuickAddRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// --- Mock OnboardingAPIFacade ---
type MockOnboardingAPI struct {
	mock.Mock
}

func (m *MockOnboardingAPI) GetOnboarding(ctx context.Context) (*dto.OnboardingStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OnboardingStatus), args.Error(1)
}

func (m *MockOnboardingAPI) SaveOnboarding(ctx context.Context, profile domain.OnboardingProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockOnboardingAPI) SkipOnboarding(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock FireAPIFacade ---
type MockFireAPI struct {
	mock.Mock
}

func (m *MockFireAPI) FireSnapshot(ctx context.Context) (*domain.FireSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FireSnapshot), args.Error(1)
}

// --- Mock ImportAPIFacade ---
type MockImportAPI struct {
	mock.Mock
}

func (m *MockImportAPI) UploadStatement(ctx context.Context, filename string, file io.Reader, password string) (*dto.UploadResponse, error) {
	args := m.Called(ctx, filename, file, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadResponse), args.Error(1)
}

func (m *MockImportAPI) ListStaged(ctx context.Context, batchID string) ([]domain.StagedTransaction, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagedTransaction), args.Error(1)
}

func (m *MockImportAPI) UpdateStaged(ctx context.Context, stagedID string, updates dto.StagedUpdate) (*domain.StagedTransaction, error) {
	args := m.Called(ctx, stagedID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedTransaction), args.Error(1)
}

func (m *MockImportAPI) UpdateStagedBulk(ctx context.Context, req dto.BulkStagedUpdateRequest) ([]domain.StagedTransaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagedTransaction), args.Error(1)
}

func (m *MockImportAPI) ConfirmImport(ctx context.Context, batchID string) error {
	args := m.Called(ctx, batchID)
	return args.Error(0)
}

func (m *MockImportAPI) ClearStaged(ctx context.Context, batchID string) error {
	args := m.Called(ctx, batchID)
	return args.Error(0)
}
