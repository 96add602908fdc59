// ABOUTME: Import handlers for the Huma API
// ABOUTME: Provides single-URL import and a streaming bulk import endpoint

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"stash-app-api/api/dto/mappers"
	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// IngestService interface defines the methods needed from the ingest service
type IngestService interface {
	ImportURL(ctx context.Context, ownerID, url string) (*domain.SavedItem, error)
	Ingest(ctx context.Context, ownerID string, urls []string) <-chan domain.BulkProgress
}

// ImportHandler handles import-related HTTP requests
type ImportHandler struct {
	ingestService IngestService
}

// NewImportHandler creates a new import handler
func NewImportHandler(ingestService IngestService) *ImportHandler {
	return &ImportHandler{
		ingestService: ingestService,
	}
}

// RegisterRoutes registers all import-related routes
func (h *ImportHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "importURL",
		Method:      http.MethodPost,
		Path:        "/import",
		Summary:     "Import a single URL",
		Description: "Scrapes a URL and saves it to the caller's library. Re-importing a saved URL returns the existing item.",
		Tags:        []string{"Import"},
	}, h.ImportURL)

	huma.Register(api, huma.Operation{
		OperationID: "bulkImport",
		Method:      http.MethodPost,
		Path:        "/import/bulk",
		Summary:     "Import multiple URLs with progress",
		Description: "Imports URLs in order and streams one NDJSON progress event per URL as it completes.",
		Tags:        []string{"Import"},
	}, h.BulkImport)
}

// ImportInput defines the input for the ImportURL operation
type ImportInput struct {
	UserID string `header:"X-User-ID" doc:"Library owner; defaults to 'local'"`
	Body   requests.ImportRequest
}

// ImportOutput defines the output for the ImportURL operation
type ImportOutput struct {
	Body responses.ItemResponse
}

// ImportURL handles the POST /import endpoint
func (h *ImportHandler) ImportURL(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	owner := resolveOwner(input.UserID)

	item, err := h.ingestService.ImportURL(ctx, owner, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	mapped := mappers.ToItemResponse(item)
	if mapped == nil {
		return nil, huma.Error500InternalServerError("Import produced no item")
	}

	return &ImportOutput{Body: *mapped}, nil
}

// BulkImportInput defines the input for the BulkImport operation
type BulkImportInput struct {
	UserID string `header:"X-User-ID" doc:"Library owner; defaults to 'local'"`
	Body   requests.BulkImportRequest
}

// BulkImport handles the POST /import/bulk endpoint. Progress events are
// written as newline-delimited JSON and flushed one at a time, so clients
// see each URL's outcome as soon as it is known.
func (h *ImportHandler) BulkImport(ctx context.Context, input *BulkImportInput) (*huma.StreamResponse, error) {
	owner := resolveOwner(input.UserID)
	urls := input.Body.URLs

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			hctx.SetHeader("Content-Type", "application/x-ndjson")

			writer := hctx.BodyWriter()
			flusher, _ := writer.(http.Flusher)
			encoder := json.NewEncoder(writer)

			for event := range h.ingestService.Ingest(hctx.Context(), owner, urls) {
				if err := encoder.Encode(event); err != nil {
					// Client went away; the ingest goroutine stops on
					// context cancellation.
					return
				}
				if flusher != nil {
					flusher.Flush()
				}
			}
		},
	}, nil
}
