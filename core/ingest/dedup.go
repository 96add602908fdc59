// ABOUTME: Deduplication gate prevents re-importing an already-saved URL
// ABOUTME: Consulted before every scrape to avoid wasted external calls

package ingest

import (
	"context"

	"stash-app-api/core/interfaces"
)

// DeduplicationGate checks whether an owner already has a saved item for a
// URL. It performs a read-only store lookup and has no side effects.
type DeduplicationGate struct {
	storage interfaces.ItemStorage
}

// NewDeduplicationGate creates a new deduplication gate
func NewDeduplicationGate(storage interfaces.ItemStorage) *DeduplicationGate {
	return &DeduplicationGate{
		storage: storage,
	}
}

// ShouldSkip returns true when the owner already saved the URL and the
// scrape should be skipped.
func (g *DeduplicationGate) ShouldSkip(ctx context.Context, ownerID, url string) (bool, error) {
	exists, err := g.storage.ExistsByURL(ctx, ownerID, url)
	if err != nil {
		return false, err
	}
	return exists, nil
}
