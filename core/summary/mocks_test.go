package summary

import (
	"context"

	"stash-app-api/core/domain"
)

// mockItemStorage is a mock implementation of the ItemStorage interface
type mockItemStorage struct {
	getByIDFunc func(ctx context.Context, ownerID, id string) (*domain.SavedItem, error)
	updateFunc  func(ctx context.Context, ownerID, id, summary string, tags []string) error
}

func (m *mockItemStorage) Create(ctx context.Context, item *domain.SavedItem) error {
	return nil
}

func (m *mockItemStorage) GetByID(ctx context.Context, ownerID, id string) (*domain.SavedItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, ownerID, id)
	}
	return nil, nil
}

func (m *mockItemStorage) ExistsByURL(ctx context.Context, ownerID, url string) (bool, error) {
	return false, nil
}

func (m *mockItemStorage) GetByURL(ctx context.Context, ownerID, url string) (*domain.SavedItem, error) {
	return nil, nil
}

func (m *mockItemStorage) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SavedItem, error) {
	return nil, nil
}

func (m *mockItemStorage) UpdateSummary(ctx context.Context, ownerID, id, summary string, tags []string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, ownerID, id, summary, tags)
	}
	return nil
}

func (m *mockItemStorage) Delete(ctx context.Context, ownerID, id string) error {
	return nil
}

// mockGenerator is a mock implementation of the SummaryGenerator interface
type mockGenerator struct {
	streamFunc func(ctx context.Context, content string, onChunk func(chunk string)) error
}

func (m *mockGenerator) StreamSummary(ctx context.Context, content string, onChunk func(chunk string)) error {
	if m.streamFunc != nil {
		return m.streamFunc(ctx, content, onChunk)
	}
	return nil
}

// mockTagger is a mock implementation of the TagExtractor interface
type mockTagger struct {
	extractFunc func(ctx context.Context, summary string) ([]string, error)
}

func (m *mockTagger) ExtractTags(ctx context.Context, summary string) ([]string, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, summary)
	}
	return nil, nil
}

// mockLogger is a no-op logger that records warning messages
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
