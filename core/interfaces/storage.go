// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for saved item persistence operations

package interfaces

import (
	"context"

	"stash-app-api/core/domain"
)

// ItemStorage defines the interface for saved item persistence.
// Implementations must enforce (owner, URL) uniqueness: a second Create
// for the same pair must fail rather than insert a duplicate row.
type ItemStorage interface {
	// Create persists a new saved item
	Create(ctx context.Context, item *domain.SavedItem) error

	// GetByID retrieves an item by id, scoped to its owner
	GetByID(ctx context.Context, ownerID, id string) (*domain.SavedItem, error)

	// ExistsByURL reports whether the owner already saved the URL
	ExistsByURL(ctx context.Context, ownerID, url string) (bool, error)

	// GetByURL retrieves the owner's item for a URL, if one exists
	GetByURL(ctx context.Context, ownerID, url string) (*domain.SavedItem, error)

	// ListByOwner returns all items for the owner, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.SavedItem, error)

	// UpdateSummary sets the item's summary and tags in one write
	UpdateSummary(ctx context.Context, ownerID, id, summary string, tags []string) error

	// Delete removes an item, scoped to its owner
	Delete(ctx context.Context, ownerID, id string) error
}
