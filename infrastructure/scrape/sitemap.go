// ABOUTME: Site mapping discovers importable sub-URLs from a root page
// ABOUTME: Uses colly to collect same-host links with optional text filtering

package scrape

import (
	"context"
	"net/url"
	"strings"
	"time"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"

	"github.com/gocolly/colly"
)

// Map discovers sub-URLs reachable from the root URL. Only same-host links
// are returned. A non-empty filter keeps links whose URL or anchor text
// contains the filter, case-insensitively.
func (s *Scraper) Map(ctx context.Context, rootURL, filter string) ([]domain.SearchResult, error) {
	root, err := url.Parse(rootURL)
	if err != nil || root.Scheme == "" || root.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url must be absolute"}
	}

	maxResults := s.cfg.MaxMapResults
	if maxResults <= 0 {
		maxResults = 100
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(root.Host),
		colly.MaxDepth(1),
	)
	collector.SetRequestTimeout(time.Duration(s.cfg.Timeout) * time.Second)

	seen := make(map[string]bool)
	results := make([]domain.SearchResult, 0)

	collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		if ctx.Err() != nil || len(results) >= maxResults {
			return
		}

		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link == "" {
			return
		}

		parsed, err := url.Parse(link)
		if err != nil || parsed.Host != root.Host {
			return
		}
		// Drop fragments so anchors on the same page collapse to one URL
		parsed.Fragment = ""
		link = parsed.String()

		if seen[link] || link == rootURL {
			return
		}

		title := strings.TrimSpace(e.Text)
		if !matchesFilter(link, title, filter) {
			return
		}

		seen[link] = true
		results = append(results, domain.SearchResult{
			URL:   link,
			Title: title,
		})
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := collector.Visit(rootURL); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: 0,
			Message:    err.Error(),
			API:        root.Host,
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Site map collected", map[string]interface{}{
			"url":   rootURL,
			"links": len(results),
		})
	}

	return results, nil
}

// matchesFilter reports whether a link passes the optional text filter
func matchesFilter(link, title, filter string) bool {
	if filter == "" {
		return true
	}

	filter = strings.ToLower(filter)
	return strings.Contains(strings.ToLower(link), filter) ||
		strings.Contains(strings.ToLower(title), filter)
}
