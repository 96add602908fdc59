// ABOUTME: Discovery service finds candidate URLs for bulk import
// ABOUTME: Wraps the scraper's web search and site mapping capabilities

package discovery

import (
	"context"
	"net/url"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
)

// Service handles URL discovery operations
type Service struct {
	deps    interfaces.Dependencies
	scraper interfaces.Scraper
}

// NewService creates a new discovery service instance
func NewService(deps interfaces.Dependencies, scraper interfaces.Scraper) *Service {
	return &Service{
		deps:    deps,
		scraper: scraper,
	}
}

// SearchWeb performs a free-text web search and returns candidate URLs.
// An empty query is rejected before any external call is made.
func (s *Service) SearchWeb(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "query cannot be empty"}
	}

	results, err := s.scraper.Search(ctx, query)
	if err != nil {
		return nil, coreerrors.WrapError(err, "web search failed")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Web search completed", map[string]interface{}{
			"query":   query,
			"results": len(results),
		})
	}

	return results, nil
}

// MapURLs discovers sub-URLs reachable from a root URL. The filter, when
// present, is passed through to the scraper's own matching rules.
func (s *Service) MapURLs(ctx context.Context, rootURL, filter string) ([]domain.SearchResult, error) {
	if rootURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url cannot be empty"}
	}

	parsed, err := url.Parse(rootURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url must be absolute"}
	}

	results, err := s.scraper.Map(ctx, rootURL, filter)
	if err != nil {
		return nil, coreerrors.WrapError(err, "site mapping failed")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Site mapping completed", map[string]interface{}{
			"url":     rootURL,
			"filter":  filter,
			"results": len(results),
		})
	}

	return results, nil
}
