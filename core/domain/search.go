// ABOUTME: Search domain models for URL discovery results
// ABOUTME: Defines structures for web search and site mapping output

package domain

// SearchResult represents a discovered URL from web search or site mapping.
// Results are transient; they only exist as ingestion input candidates.
type SearchResult struct {
	// URL is the discovered page URL
	URL string `json:"url"`

	// Title is the page title, when the discovery source provides one
	Title string `json:"title,omitempty"`

	// Description is a short snippet describing the page, when available
	Description string `json:"description,omitempty"`
}
