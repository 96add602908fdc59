// ABOUTME: Summary handler for the Huma API
// ABOUTME: Streams AI-generated summary text for a saved item as plain text chunks

package handlers

import (
	"context"
	"net/http"
	"strings"

	"stash-app-api/api/dto/requests"
	"stash-app-api/core/domain"
	"stash-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// SummaryService interface defines the methods needed from the summary service
type SummaryService interface {
	StreamSummary(ctx context.Context, ownerID, itemID string, onChunk func(chunk string)) (*domain.SavedItem, error)
}

// ItemLookup is the subset of the items service used to validate a
// summary request before the response stream starts.
type ItemLookup interface {
	GetItem(ctx context.Context, ownerID, id string) (*domain.SavedItem, error)
}

// SummaryHandler handles summary-related HTTP requests
type SummaryHandler struct {
	summaryService SummaryService
	itemLookup     ItemLookup
	logger         interfaces.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService SummaryService, itemLookup ItemLookup, logger interfaces.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		itemLookup:     itemLookup,
		logger:         logger,
	}
}

// RegisterRoutes registers all summary-related routes
func (h *SummaryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateSummary",
		Method:      http.MethodPost,
		Path:        "/ai/summary",
		Summary:     "Generate a summary for a saved item",
		Description: "Streams AI-generated summary text as plain-text chunks. The finished summary and derived tags are persisted on the item.",
		Tags:        []string{"AI"},
	}, h.GenerateSummary)
}

// SummaryInput defines the input for the GenerateSummary operation
type SummaryInput struct {
	UserID string `header:"X-User-ID" doc:"Library owner; defaults to 'local'"`
	Body   requests.SummaryRequest
}

// GenerateSummary handles the POST /ai/summary endpoint. The item is
// validated before the stream starts so unknown items get a proper 404
// instead of an empty 200 body.
func (h *SummaryHandler) GenerateSummary(ctx context.Context, input *SummaryInput) (*huma.StreamResponse, error) {
	owner := resolveOwner(input.UserID)
	itemID := strings.TrimSpace(input.Body.ItemID)
	if itemID == "" {
		return nil, huma.Error400BadRequest("itemId is required")
	}

	item, err := h.itemLookup.GetItem(ctx, owner, itemID)
	if err != nil {
		return nil, toHumaError(err)
	}
	if !item.HasContent() {
		return nil, huma.Error400BadRequest("item has no content to summarize")
	}

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			hctx.SetHeader("Content-Type", "text/plain; charset=utf-8")

			writer := hctx.BodyWriter()
			flusher, _ := writer.(http.Flusher)

			_, err := h.summaryService.StreamSummary(hctx.Context(), owner, itemID, func(chunk string) {
				if _, werr := writer.Write([]byte(chunk)); werr != nil {
					return
				}
				if flusher != nil {
					flusher.Flush()
				}
			})
			if err != nil && h.logger != nil {
				// Headers are already sent; all we can do is log and
				// truncate the stream.
				h.logger.Error("Summary stream failed", map[string]interface{}{
					"item":  itemID,
					"error": err.Error(),
				})
			}
		},
	}, nil
}
