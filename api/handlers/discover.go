// ABOUTME: Discovery handlers for the Huma API
// ABOUTME: Provides web search and site mapping endpoints for finding URLs to import

package handlers

import (
	"context"
	"net/http"

	"stash-app-api/api/dto/mappers"
	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// DiscoveryService interface defines the methods needed from the discovery service
type DiscoveryService interface {
	SearchWeb(ctx context.Context, query string) ([]domain.SearchResult, error)
	MapURLs(ctx context.Context, rootURL, filter string) ([]domain.SearchResult, error)
}

// DiscoverHandler handles discovery-related HTTP requests
type DiscoverHandler struct {
	discoveryService DiscoveryService
}

// NewDiscoverHandler creates a new discovery handler
func NewDiscoverHandler(discoveryService DiscoveryService) *DiscoverHandler {
	return &DiscoverHandler{
		discoveryService: discoveryService,
	}
}

// RegisterRoutes registers all discovery-related routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverSearch",
		Method:      http.MethodPost,
		Path:        "/discover/search",
		Summary:     "Search the web for URLs",
		Description: "Performs a free-text web search and returns candidate URLs to import",
		Tags:        []string{"Discover"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "discoverMap",
		Method:      http.MethodPost,
		Path:        "/discover/map",
		Summary:     "Map a site's URLs",
		Description: "Discovers same-site links reachable from a root URL, optionally filtered by a term",
		Tags:        []string{"Discover"},
	}, h.Map)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.DiscoverResponse
}

// Search handles the POST /discover/search endpoint
func (h *DiscoverHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	results, err := h.discoveryService.SearchWeb(ctx, input.Body.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: mappers.ToDiscoverResponse(results)}, nil
}

// MapInput defines the input for the Map operation
type MapInput struct {
	Body requests.MapRequest
}

// MapOutput defines the output for the Map operation
type MapOutput struct {
	Body responses.DiscoverResponse
}

// Map handles the POST /discover/map endpoint
func (h *DiscoverHandler) Map(ctx context.Context, input *MapInput) (*MapOutput, error) {
	results, err := h.discoveryService.MapURLs(ctx, input.Body.URL, input.Body.Filter)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &MapOutput{Body: mappers.ToDiscoverResponse(results)}, nil
}
