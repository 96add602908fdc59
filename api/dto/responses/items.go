// ABOUTME: Response DTOs for item, import, and discovery API endpoints
// ABOUTME: Defines the JSON shapes returned to API clients

package responses

import "time"

// ItemResponse represents a saved item in API responses
type ItemResponse struct {
	// ID is the item's unique identifier
	ID string `json:"id" doc:"Item identifier"`

	// URL is the source address the item was saved from
	URL string `json:"url" doc:"Source URL"`

	// Title is the extracted page title
	Title string `json:"title,omitempty" doc:"Extracted title"`

	// Author is the extracted byline
	Author string `json:"author,omitempty" doc:"Extracted author"`

	// Content is the plain-text article body
	Content string `json:"content,omitempty" doc:"Plain-text article body"`

	// Markdown is the article body converted to markdown
	Markdown string `json:"markdown,omitempty" doc:"Markdown article body"`

	// OGImage is the page's cover image URL
	OGImage string `json:"ogImage,omitempty" doc:"Cover image URL"`

	// PublishedAt is the extracted publication time
	PublishedAt *time.Time `json:"publishedAt,omitempty" doc:"Publication time"`

	// Summary is the AI-generated summary, if one has been produced
	Summary string `json:"summary,omitempty" doc:"AI-generated summary"`

	// Tags are topics derived from the summary
	Tags []string `json:"tags,omitempty" doc:"Derived topic tags"`

	// Status reflects the ingestion outcome
	Status string `json:"status" doc:"Ingestion status"`

	// Timestamps
	CreatedAt time.Time `json:"createdAt" doc:"Creation time"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Last update time"`
}

// ItemListResponse represents a list of saved items
type ItemListResponse struct {
	// Items are the caller's saved items, newest first
	Items []ItemResponse `json:"items" doc:"Saved items"`

	// Count is the number of items returned
	Count int `json:"count" doc:"Number of items returned"`
}

// SearchResultResponse represents one discovered URL
type SearchResultResponse struct {
	// URL is the discovered address
	URL string `json:"url" doc:"Discovered URL"`

	// Title is the page or link title, if known
	Title string `json:"title,omitempty" doc:"Page title"`

	// Description is a short snippet, if known
	Description string `json:"description,omitempty" doc:"Result snippet"`
}

// DiscoverResponse represents the results of a search or map operation
type DiscoverResponse struct {
	// Results are the discovered URLs
	Results []SearchResultResponse `json:"results" doc:"Discovered URLs"`

	// Count is the number of results returned
	Count int `json:"count" doc:"Number of results returned"`
}
