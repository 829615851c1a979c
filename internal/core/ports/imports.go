package ports

import (
	"context"
	"io"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// ImportAPIFacade is the statement-import surface of the backend. Bulk and
// single staged edits may overlap; the server resolves last-write-wins.
type ImportAPIFacade interface {
	UploadStatement(ctx context.Context, filename string, file io.Reader, password string) (*dto.UploadResponse, error)
	ListStaged(ctx context.Context, batchID string) ([]domain.StagedTransaction, error)
	UpdateStaged(ctx context.Context, stagedID string, updates dto.StagedUpdate) (*domain.StagedTransaction, error)
	UpdateStagedBulk(ctx context.Context, req dto.BulkStagedUpdateRequest) ([]domain.StagedTransaction, error)
	ConfirmImport(ctx context.Context, batchID string) error
	ClearStaged(ctx context.Context, batchID string) error
}
