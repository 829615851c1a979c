package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/finwealth4all/enoughfi-client/internal/apperrors"
	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/core/ports"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
	"github.com/finwealth4all/enoughfi-client/internal/platform/logging"
)

// ErrBatchFinalized is returned when a staged edit or terminal transition is
// attempted on a batch that was already confirmed or cleared.
var ErrBatchFinalized = errors.New("import batch already confirmed or cleared")

// RefreshHook is invoked after a terminal batch transition so the owner of
// the transaction list can re-fetch it. The workflow never synthesizes
// transaction rows from staged data; the server stays the source of truth.
type RefreshHook func(ctx context.Context)

// ImportService drives the staged-import reconciliation workflow:
// upload -> staged -> edit any number of times -> confirm or clear.
type ImportService struct {
	api       ports.ImportAPIFacade
	onRefresh RefreshHook
}

// NewImportService creates the workflow over the import facade. onRefresh
// may be nil.
func NewImportService(api ports.ImportAPIFacade, onRefresh RefreshHook) *ImportService {
	return &ImportService{api: api, onRefresh: onRefresh}
}

// Upload sends a statement file for parsing and returns the staged batch.
// Parse and wrong-password errors surface verbatim from the server.
func (s *ImportService) Upload(ctx context.Context, filename string, file io.Reader, password string) (*domain.ImportBatch, error) {
	resp, err := s.api.UploadStatement(ctx, filename, file, password)
	if err != nil {
		return nil, err
	}
	logging.FromCtx(ctx).Info("Statement staged",
		slog.String("batch_id", resp.BatchID), slog.Int("staged", resp.TotalStaged()))
	return &domain.ImportBatch{
		BatchID:     resp.BatchID,
		StagedCount: resp.TotalStaged(),
		State:       domain.BatchStaged,
	}, nil
}

// Staged lists the batch's staged records for review.
func (s *ImportService) Staged(ctx context.Context, batch *domain.ImportBatch) ([]domain.StagedTransaction, error) {
	if batch.State.Terminal() {
		return nil, ErrBatchFinalized
	}
	return s.api.ListStaged(ctx, batch.BatchID)
}

// EditStaged applies partial updates to one staged record, letting the user
// correct fields the parser guessed wrong without re-uploading.
func (s *ImportService) EditStaged(ctx context.Context, batch *domain.ImportBatch, stagedID string, updates dto.StagedUpdate) (*domain.StagedTransaction, error) {
	if batch.State.Terminal() {
		return nil, ErrBatchFinalized
	}
	if updates.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}
	return s.api.UpdateStaged(ctx, stagedID, updates)
}

// EditStagedBulk applies the same updates to a set of staged records.
// Overlap with concurrent single edits resolves last-write-wins.
func (s *ImportService) EditStagedBulk(ctx context.Context, batch *domain.ImportBatch, ids []string, updates dto.StagedUpdate) ([]domain.StagedTransaction, error) {
	if batch.State.Terminal() {
		return nil, ErrBatchFinalized
	}
	if updates.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}
	return s.api.UpdateStagedBulk(ctx, dto.BulkStagedUpdateRequest{IDs: ids, Updates: updates})
}

// Confirm atomically commits every staged record of the batch as real
// transactions. The client names only the batch id; partial confirms do not
// exist. On success the batch is terminal and the refresh hook fires.
func (s *ImportService) Confirm(ctx context.Context, batch *domain.ImportBatch) error {
	if batch.State.Terminal() {
		return ErrBatchFinalized
	}
	if err := s.api.ConfirmImport(ctx, batch.BatchID); err != nil {
		return err
	}
	batch.State = domain.BatchConfirmed
	s.refresh(ctx)
	return nil
}

// Clear discards every staged record of the batch without creating
// transactions.
func (s *ImportService) Clear(ctx context.Context, batch *domain.ImportBatch) error {
	if batch.State.Terminal() {
		return ErrBatchFinalized
	}
	if err := s.api.ClearStaged(ctx, batch.BatchID); err != nil {
		return err
	}
	batch.State = domain.BatchCleared
	s.refresh(ctx)
	return nil
}

// ClearAll discards staged records across every batch.
func (s *ImportService) ClearAll(ctx context.Context) error {
	if err := s.api.ClearStaged(ctx, ""); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *ImportService) refresh(ctx context.Context) {
	if s.onRefresh != nil {
		s.onRefresh(ctx)
	}
}
