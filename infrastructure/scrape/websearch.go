// ABOUTME: Web search client for discovering import candidates by free-text query
// ABOUTME: Calls a configurable external search API and maps results to the domain

package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
)

// Search performs a free-text web search against the configured search API
func (s *Scraper) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if s.cfg.SearchAPIURL == "" {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: 0,
			Message:    "search API not configured",
			API:        "search",
		}
	}

	apiURL := fmt.Sprintf("%s?q=%s", s.cfg.SearchAPIURL, url.QueryEscape(query))
	if s.cfg.SearchAPIKey != "" {
		apiURL += "&key=" + url.QueryEscape(s.cfg.SearchAPIKey)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, apiURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to call search API")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "search API returned non-200 status",
			API:        "search",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read search response")
	}

	var apiResponse struct {
		Results []struct {
			URL         string `json:"url"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse search results")
	}

	results := make([]domain.SearchResult, 0, len(apiResponse.Results))
	for _, r := range apiResponse.Results {
		if r.URL == "" {
			continue
		}
		results = append(results, domain.SearchResult{
			URL:         r.URL,
			Title:       r.Title,
			Description: r.Description,
		})
	}

	return results, nil
}
