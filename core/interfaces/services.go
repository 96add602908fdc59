// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the external scraping and generation collaborators

package interfaces

import (
	"context"

	"stash-app-api/core/domain"
)

// Scraper extracts structured content and discovers URLs through an
// external scraping capability. Each call is bounded by the
// implementation's own per-request timeout.
type Scraper interface {
	// Scrape fetches one URL and extracts its content fields
	Scrape(ctx context.Context, url string) (*domain.ScrapedContent, error)

	// Map discovers sub-URLs reachable from a root URL. The filter, when
	// non-empty, narrows results by the implementation's own matching rules.
	Map(ctx context.Context, rootURL, filter string) ([]domain.SearchResult, error)

	// Search performs a free-text web search
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// SummaryGenerator streams AI-generated summary text for saved content.
type SummaryGenerator interface {
	// StreamSummary generates a summary of content, invoking onChunk for
	// each text chunk as it is produced. A non-nil error means the stream
	// did not complete cleanly and any relayed chunks must be discarded.
	StreamSummary(ctx context.Context, content string, onChunk func(chunk string)) error
}

// TagExtractor derives topic tags from a finished summary.
type TagExtractor interface {
	// ExtractTags returns tags for the given summary text
	ExtractTags(ctx context.Context, summary string) ([]string, error)
}
