// ABOUTME: Request DTOs for import, discovery, and summary API endpoints
// ABOUTME: Provides validation constraints for incoming requests

package requests

// ImportRequest represents the request body for importing a single URL
type ImportRequest struct {
	// URL is the address of the page to save
	URL string `json:"url" required:"true" format:"uri" doc:"URL to scrape and save"`
}

// BulkImportRequest represents the request body for bulk importing URLs.
// An empty list is valid and produces no progress events.
type BulkImportRequest struct {
	// URLs is the ordered list of URLs to import
	URLs []string `json:"urls" maxItems:"500" doc:"URLs to import, processed in order"`
}

// SearchRequest represents the request body for a web search
type SearchRequest struct {
	// Query is the free-text search query
	Query string `json:"query" required:"true" minLength:"1" doc:"Search query"`
}

// MapRequest represents the request body for mapping a site's URLs
type MapRequest struct {
	// URL is the root URL to map
	URL string `json:"url" required:"true" format:"uri" doc:"Root URL to discover links from"`

	// Filter narrows results to links matching this term
	Filter string `json:"filter,omitempty" doc:"Optional term to filter discovered links"`
}

// SummaryRequest represents the request body for generating a summary.
// ItemID is checked in the handler so a missing value maps to a plain 400.
type SummaryRequest struct {
	// ItemID identifies the saved item to summarize
	ItemID string `json:"itemId,omitempty" doc:"ID of the saved item to summarize"`
}
