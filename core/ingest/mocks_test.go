package ingest

import (
	"context"
	"sync"

	"stash-app-api/core/domain"
)

// mockItemStorage is a mock implementation of the ItemStorage interface
type mockItemStorage struct {
	mu              sync.Mutex
	created         []*domain.SavedItem
	createFunc      func(ctx context.Context, item *domain.SavedItem) error
	getByIDFunc     func(ctx context.Context, ownerID, id string) (*domain.SavedItem, error)
	existsByURLFunc func(ctx context.Context, ownerID, url string) (bool, error)
	getByURLFunc    func(ctx context.Context, ownerID, url string) (*domain.SavedItem, error)
	listByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.SavedItem, error)
	updateFunc      func(ctx context.Context, ownerID, id, summary string, tags []string) error
	deleteFunc      func(ctx context.Context, ownerID, id string) error
}

func (m *mockItemStorage) Create(ctx context.Context, item *domain.SavedItem) error {
	m.mu.Lock()
	m.created = append(m.created, item)
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	return nil
}

func (m *mockItemStorage) createdItems() []*domain.SavedItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.SavedItem, len(m.created))
	copy(out, m.created)
	return out
}

func (m *mockItemStorage) GetByID(ctx context.Context, ownerID, id string) (*domain.SavedItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, ownerID, id)
	}
	return nil, nil
}

func (m *mockItemStorage) ExistsByURL(ctx context.Context, ownerID, url string) (bool, error) {
	if m.existsByURLFunc != nil {
		return m.existsByURLFunc(ctx, ownerID, url)
	}
	return false, nil
}

func (m *mockItemStorage) GetByURL(ctx context.Context, ownerID, url string) (*domain.SavedItem, error) {
	if m.getByURLFunc != nil {
		return m.getByURLFunc(ctx, ownerID, url)
	}
	return nil, nil
}

func (m *mockItemStorage) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SavedItem, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockItemStorage) UpdateSummary(ctx context.Context, ownerID, id, summary string, tags []string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, ownerID, id, summary, tags)
	}
	return nil
}

func (m *mockItemStorage) Delete(ctx context.Context, ownerID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ownerID, id)
	}
	return nil
}

// mockScraper is a mock implementation of the Scraper interface
type mockScraper struct {
	scrapeFunc func(ctx context.Context, url string) (*domain.ScrapedContent, error)
	mapFunc    func(ctx context.Context, rootURL, filter string) ([]domain.SearchResult, error)
	searchFunc func(ctx context.Context, query string) ([]domain.SearchResult, error)
}

func (m *mockScraper) Scrape(ctx context.Context, url string) (*domain.ScrapedContent, error) {
	if m.scrapeFunc != nil {
		return m.scrapeFunc(ctx, url)
	}
	return &domain.ScrapedContent{Title: "Untitled", TextContent: "body"}, nil
}

func (m *mockScraper) Map(ctx context.Context, rootURL, filter string) ([]domain.SearchResult, error) {
	if m.mapFunc != nil {
		return m.mapFunc(ctx, rootURL, filter)
	}
	return nil, nil
}

func (m *mockScraper) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

// mockLogger is a no-op logger that records error messages
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	m.errors = append(m.errors, msg)
	m.mu.Unlock()
}
