package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"stash-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
)

// mockIngestService is a mock implementation of the ingest service
type mockIngestService struct {
	importURLFunc func(ctx context.Context, ownerID, url string) (*domain.SavedItem, error)
	ingestFunc    func(ctx context.Context, ownerID string, urls []string) <-chan domain.BulkProgress
}

func (m *mockIngestService) ImportURL(ctx context.Context, ownerID, url string) (*domain.SavedItem, error) {
	if m.importURLFunc != nil {
		return m.importURLFunc(ctx, ownerID, url)
	}
	return nil, nil
}

func (m *mockIngestService) Ingest(ctx context.Context, ownerID string, urls []string) <-chan domain.BulkProgress {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, ownerID, urls)
	}
	ch := make(chan domain.BulkProgress)
	close(ch)
	return ch
}

func TestImportHandler_RegisterRoutes(t *testing.T) {
	handler := NewImportHandler(&mockIngestService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/import"] == nil || openapi.Paths["/import"].Post == nil {
		t.Error("POST /import endpoint not registered")
	}
	if openapi.Paths["/import/bulk"] == nil || openapi.Paths["/import/bulk"].Post == nil {
		t.Error("POST /import/bulk endpoint not registered")
	}
}

func TestImportURL_ReturnsSavedItem(t *testing.T) {
	mockService := &mockIngestService{
		importURLFunc: func(ctx context.Context, ownerID, url string) (*domain.SavedItem, error) {
			if ownerID != "alice" {
				t.Errorf("owner = %q, want alice", ownerID)
			}
			return &domain.SavedItem{ID: "item-1", OwnerID: ownerID, URL: url, Status: domain.ItemStatusCompleted}, nil
		},
	}
	handler := NewImportHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/import", "X-User-ID: alice", map[string]any{
		"url": "https://example.com/article",
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.ID != "item-1" || body.URL != "https://example.com/article" {
		t.Errorf("response body = %+v", body)
	}
}

func TestBulkImport_StreamsOneEventPerURL(t *testing.T) {
	mockService := &mockIngestService{
		ingestFunc: func(ctx context.Context, ownerID string, urls []string) <-chan domain.BulkProgress {
			if ownerID != "alice" {
				t.Errorf("owner = %q, want alice", ownerID)
			}
			ch := make(chan domain.BulkProgress)
			go func() {
				defer close(ch)
				for i, u := range urls {
					status := domain.OutcomeSuccess
					if i == len(urls)-1 {
						status = domain.OutcomeFailed
					}
					ch <- domain.BulkProgress{Completed: i + 1, Total: len(urls), URL: u, Status: status}
				}
			}()
			return ch
		},
	}
	handler := NewImportHandler(mockService)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/import/bulk", "X-User-ID: alice", map[string]any{
		"urls": []string{"https://a.test/1", "https://a.test/2", "https://b.test/x"},
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/x-ndjson" {
		t.Errorf("content type = %q, want application/x-ndjson", ct)
	}
	if !resp.Flushed {
		t.Error("progress events should be flushed as they are written")
	}

	lines := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d NDJSON lines, want 3:\n%s", len(lines), resp.Body.String())
	}

	for i, line := range lines {
		var event domain.BulkProgress
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if event.Completed != i+1 {
			t.Errorf("line %d completed = %d, want %d", i, event.Completed, i+1)
		}
		if event.Total != 3 {
			t.Errorf("line %d total = %d, want 3", i, event.Total)
		}
	}

	var last domain.BulkProgress
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("last line is not valid JSON: %v", err)
	}
	if last.Status != domain.OutcomeFailed {
		t.Errorf("last event status = %q, want failed", last.Status)
	}
}

func TestBulkImport_EmptyListStreamsNothing(t *testing.T) {
	handler := NewImportHandler(&mockIngestService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/import/bulk", map[string]any{
		"urls": []string{},
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != "" {
		t.Errorf("body = %q, want no events for an empty list", body)
	}
}
