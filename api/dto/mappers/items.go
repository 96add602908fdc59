// ABOUTME: Mappers convert domain models to response DTOs
// ABOUTME: Keeps the API wire format decoupled from the core domain types

package mappers

import (
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/domain"
)

// ToItemResponse converts a domain saved item to its response DTO
func ToItemResponse(item *domain.SavedItem) *responses.ItemResponse {
	if item == nil {
		return nil
	}

	return &responses.ItemResponse{
		ID:          item.ID,
		URL:         item.URL,
		Title:       item.Title,
		Author:      item.Author,
		Content:     item.Content,
		Markdown:    item.Markdown,
		OGImage:     item.OGImage,
		PublishedAt: item.PublishedAt,
		Summary:     item.Summary,
		Tags:        item.Tags,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToItemListResponse converts a slice of domain items to a list response
func ToItemListResponse(items []*domain.SavedItem) responses.ItemListResponse {
	out := make([]responses.ItemResponse, 0, len(items))
	for _, item := range items {
		if mapped := ToItemResponse(item); mapped != nil {
			out = append(out, *mapped)
		}
	}

	return responses.ItemListResponse{
		Items: out,
		Count: len(out),
	}
}

// ToDiscoverResponse converts search results to a discovery response
func ToDiscoverResponse(results []domain.SearchResult) responses.DiscoverResponse {
	out := make([]responses.SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, responses.SearchResultResponse{
			URL:         r.URL,
			Title:       r.Title,
			Description: r.Description,
		})
	}

	return responses.DiscoverResponse{
		Results: out,
		Count:   len(out),
	}
}
