package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/finwealth4all/enoughfi-client/internal/core/domain"
	"github.com/finwealth4all/enoughfi-client/internal/dto"
)

// UploadStatement posts a statement file for parsing. password is optional
// and only relevant for protected documents. Parse and password errors come
// back verbatim as HTTPError messages.
func (c *Client) UploadStatement(ctx context.Context, filename string, file io.Reader, password string) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading statement file: %w", err)
	}
	if password != "" {
		if err := writer.WriteField("password", password); err != nil {
			return nil, fmt.Errorf("building upload form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	var resp dto.UploadResponse
	if err := c.CallForm(ctx, http.MethodPost, "/import/upload", buf.Bytes(), writer.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListStaged returns staged records, scoped to one batch when batchID is set.
func (c *Client) ListStaged(ctx context.Context, batchID string) ([]domain.StagedTransaction, error) {
	path := "/import/staged"
	if batchID != "" {
		path += "?batch_id=" + url.QueryEscape(batchID)
	}
	var staged []domain.StagedTransaction
	if err := c.Call(ctx, http.MethodGet, path, nil, &staged); err != nil {
		return nil, err
	}
	return staged, nil
}

// UpdateStaged applies partial updates to a single staged record.
func (c *Client) UpdateStaged(ctx context.Context, stagedID string, updates dto.StagedUpdate) (*domain.StagedTransaction, error) {
	var record domain.StagedTransaction
	if err := c.Call(ctx, http.MethodPut, "/import/staged/"+stagedID, updates, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateStagedBulk applies the same updates to every listed record.
// Overlapping bulk and single edits resolve last-write-wins server-side.
func (c *Client) UpdateStagedBulk(ctx context.Context, req dto.BulkStagedUpdateRequest) ([]domain.StagedTransaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var records []domain.StagedTransaction
	if err := c.Call(ctx, http.MethodPut, "/import/staged-bulk", req, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ConfirmImport commits every staged record of the batch as real
// transactions; the server converts all of them or fails the whole batch.
func (c *Client) ConfirmImport(ctx context.Context, batchID string) error {
	req := dto.ConfirmImportRequest{BatchID: batchID}
	if err := dto.Validate(req); err != nil {
		return err
	}
	return c.Call(ctx, http.MethodPost, "/import/confirm", req, nil)
}

// ClearStaged discards staged records for a batch, or all batches when
// batchID is empty. No transactions are created.
func (c *Client) ClearStaged(ctx context.Context, batchID string) error {
	path := "/import/staged"
	if batchID != "" {
		path += "?batch_id=" + url.QueryEscape(batchID)
	}
	return c.Call(ctx, http.MethodDelete, path, nil, nil)
}
