// ABOUTME: Ingest service orchestrates scraping URLs into saved items
// ABOUTME: Provides single-URL import and sequential bulk import with progress events

package ingest

import (
	"context"
	"net/url"
	"time"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"

	"github.com/google/uuid"
)

// Service handles content ingestion for saved items
type Service struct {
	deps    interfaces.Dependencies
	storage interfaces.ItemStorage
	scraper interfaces.Scraper
	gate    *DeduplicationGate
}

// NewService creates a new ingest service instance
func NewService(deps interfaces.Dependencies, storage interfaces.ItemStorage, scraper interfaces.Scraper) *Service {
	return &Service{
		deps:    deps,
		storage: storage,
		scraper: scraper,
		gate:    NewDeduplicationGate(storage),
	}
}

// ImportURL scrapes a single URL and persists it as a saved item.
// If the owner already saved the URL, the existing item is returned and no
// scrape is attempted.
func (s *Service) ImportURL(ctx context.Context, ownerID, rawURL string) (*domain.SavedItem, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	skip, err := s.gate.ShouldSkip(ctx, ownerID, rawURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to check for existing item")
	}
	if skip {
		return s.storage.GetByURL(ctx, ownerID, rawURL)
	}

	content, err := s.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to scrape URL")
	}

	item := newItem(ownerID, rawURL, content)
	if err := s.storage.Create(ctx, item); err != nil {
		return nil, coreerrors.WrapError(err, "failed to persist item")
	}

	return item, nil
}

// Ingest processes URLs in order, one at a time, and streams one progress
// event per URL on the returned channel. The channel is unbuffered so the
// producer suspends until the caller consumes each event, and it is closed
// after the last URL. An empty input closes the channel without emitting
// anything.
//
// Per-URL failures (scrape or persist) are absorbed into `failed` events;
// no single URL aborts the batch. Already-imported URLs count as `success`
// without a store write. When the caller's context is cancelled no further
// URLs are processed.
func (s *Service) Ingest(ctx context.Context, ownerID string, urls []string) <-chan domain.BulkProgress {
	progress := make(chan domain.BulkProgress)

	go func() {
		defer close(progress)

		total := len(urls)
		for i, u := range urls {
			if ctx.Err() != nil {
				return
			}

			status := s.processOne(ctx, ownerID, u)

			event := domain.BulkProgress{
				Completed: i + 1,
				Total:     total,
				URL:       u,
				Status:    status,
			}

			select {
			case progress <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return progress
}

// processOne runs the dedup-scrape-persist state machine for one URL and
// returns its terminal outcome. All I/O errors are converted to a failed
// outcome here so the ingest loop stays free of branching logic.
func (s *Service) processOne(ctx context.Context, ownerID, rawURL string) domain.OutcomeStatus {
	skip, err := s.gate.ShouldSkip(ctx, ownerID, rawURL)
	if err != nil {
		s.logError("Dedup check failed", ownerID, rawURL, err)
		// Fall through to scrape; a true duplicate will surface as a
		// uniqueness violation on Create.
	}
	if skip {
		return domain.OutcomeSuccess
	}

	content, err := s.scraper.Scrape(ctx, rawURL)
	if err != nil {
		s.logError("Scrape failed", ownerID, rawURL, err)
		return domain.OutcomeFailed
	}

	item := newItem(ownerID, rawURL, content)
	if err := s.storage.Create(ctx, item); err != nil {
		s.logError("Persist failed", ownerID, rawURL, err)
		return domain.OutcomeFailed
	}

	return domain.OutcomeSuccess
}

// newItem builds a saved item from scraped content
func newItem(ownerID, rawURL string, content *domain.ScrapedContent) *domain.SavedItem {
	now := time.Now()
	return &domain.SavedItem{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		URL:         rawURL,
		Title:       content.Title,
		Author:      content.Author,
		Content:     content.TextContent,
		Markdown:    content.Markdown,
		OGImage:     content.OGImage,
		PublishedAt: content.PublishedAt,
		Status:      domain.ItemStatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// validateURL checks that a URL is absolute
func validateURL(rawURL string) error {
	if rawURL == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "url cannot be empty"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "url must be absolute"}
	}

	return nil
}

func (s *Service) logError(msg, ownerID, rawURL string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Error(msg, map[string]interface{}{
		"owner": ownerID,
		"url":   rawURL,
		"error": err.Error(),
	})
}
