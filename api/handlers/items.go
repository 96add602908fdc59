// ABOUTME: Item handlers for the Huma API
// ABOUTME: Provides endpoints for listing, fetching, and deleting saved items

package handlers

import (
	"context"
	"net/http"
	"strings"

	"stash-app-api/api/dto/mappers"
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// ItemsService interface defines the methods needed from the items service
type ItemsService interface {
	GetItem(ctx context.Context, ownerID, id string) (*domain.SavedItem, error)
	ListItems(ctx context.Context, ownerID string) ([]*domain.SavedItem, error)
	DeleteItem(ctx context.Context, ownerID, id string) error
}

// ItemsHandler handles item-related HTTP requests
type ItemsHandler struct {
	itemsService ItemsService
}

// NewItemsHandler creates a new items handler
func NewItemsHandler(itemsService ItemsService) *ItemsHandler {
	return &ItemsHandler{
		itemsService: itemsService,
	}
}

// RegisterRoutes registers all item-related routes
func (h *ItemsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listItems",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List saved items",
		Description: "Returns the caller's saved items, newest first, optionally filtered by text or status",
		Tags:        []string{"Items"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "getItem",
		Method:      http.MethodGet,
		Path:        "/items/{id}",
		Summary:     "Get a saved item",
		Tags:        []string{"Items"},
	}, h.GetItem)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteItem",
		Method:        http.MethodDelete,
		Path:          "/items/{id}",
		Summary:       "Delete a saved item",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Items"},
	}, h.DeleteItem)
}

// ListItemsInput defines the input for the ListItems operation
type ListItemsInput struct {
	UserID string `header:"X-User-ID" doc:"Library owner; defaults to 'local'"`
	Query  string `query:"q" doc:"Filter items whose title or URL contains this text"`
	Status string `query:"status" doc:"Filter items by ingestion status (PENDING, COMPLETED, FAILED)"`
}

// ListItemsOutput defines the output for the ListItems operation
type ListItemsOutput struct {
	Body responses.ItemListResponse
}

// ListItems handles the GET /items endpoint
func (h *ItemsHandler) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	owner := resolveOwner(input.UserID)

	items, err := h.itemsService.ListItems(ctx, owner)
	if err != nil {
		return nil, toHumaError(err)
	}

	filtered := filterItems(items, input.Query, input.Status)

	return &ListItemsOutput{Body: mappers.ToItemListResponse(filtered)}, nil
}

// filterItems applies the optional text and status filters to a list
func filterItems(items []*domain.SavedItem, query, status string) []*domain.SavedItem {
	if query == "" && status == "" {
		return items
	}

	query = strings.ToLower(query)
	filtered := make([]*domain.SavedItem, 0, len(items))
	for _, item := range items {
		if status != "" && string(item.Status) != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.URL), query) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// GetItemInput defines the input for the GetItem operation
type GetItemInput struct {
	UserID string `header:"X-User-ID" doc:"Library owner; defaults to 'local'"`
	ID     string `path:"id" doc:"Item identifier"`
}

// GetItemOutput defines the output for the GetItem operation
type GetItemOutput struct {
	Body responses.ItemResponse
}

// GetItem handles the GET /items/{id} endpoint
func (h *ItemsHandler) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	owner := resolveOwner(input.UserID)

	item, err := h.itemsService.GetItem(ctx, owner, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	mapped := mappers.ToItemResponse(item)
	if mapped == nil {
		return nil, huma.Error404NotFound("item not found")
	}

	return &GetItemOutput{Body: *mapped}, nil
}

// DeleteItemInput defines the input for the DeleteItem operation
type DeleteItemInput struct {
	UserID string `header:"X-User-ID" doc:"Library owner; defaults to 'local'"`
	ID     string `path:"id" doc:"Item identifier"`
}

// DeleteItemOutput defines the output for the DeleteItem operation
type DeleteItemOutput struct{}

// DeleteItem handles the DELETE /items/{id} endpoint
func (h *ItemsHandler) DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	owner := resolveOwner(input.UserID)

	if err := h.itemsService.DeleteItem(ctx, owner, input.ID); err != nil {
		return nil, toHumaError(err)
	}

	return &DeleteItemOutput{}, nil
}
