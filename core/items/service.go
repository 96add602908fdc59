// ABOUTME: Items service provides read and delete access to a user's library
// ABOUTME: All operations are scoped to the owning user

package items

import (
	"context"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
)

// Service handles saved item lookups
type Service struct {
	deps    interfaces.Dependencies
	storage interfaces.ItemStorage
}

// NewService creates a new items service instance
func NewService(deps interfaces.Dependencies, storage interfaces.ItemStorage) *Service {
	return &Service{
		deps:    deps,
		storage: storage,
	}
}

// GetItem retrieves one of the owner's items by id
func (s *Service) GetItem(ctx context.Context, ownerID, id string) (*domain.SavedItem, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "id cannot be empty"}
	}

	item, err := s.storage.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &coreerrors.NotFoundError{Resource: "item", ID: id}
	}

	return item, nil
}

// ListItems returns all of the owner's items, newest first
func (s *Service) ListItems(ctx context.Context, ownerID string) ([]*domain.SavedItem, error) {
	return s.storage.ListByOwner(ctx, ownerID)
}

// DeleteItem removes one of the owner's items by id
func (s *Service) DeleteItem(ctx context.Context, ownerID, id string) error {
	item, err := s.GetItem(ctx, ownerID, id)
	if err != nil {
		return err
	}

	return s.storage.Delete(ctx, ownerID, item.ID)
}
