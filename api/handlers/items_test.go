package handlers

import (
	"testing"

	"stash-app-api/core/domain"
)

func sampleItems() []*domain.SavedItem {
	return []*domain.SavedItem{
		{ID: "1", Title: "Go Channels Deep Dive", URL: "https://example.com/go-channels", Status: domain.ItemStatusCompleted},
		{ID: "2", Title: "Rust Borrow Checker", URL: "https://example.com/rust", Status: domain.ItemStatusCompleted},
		{ID: "3", Title: "Broken Import", URL: "https://example.com/broken", Status: domain.ItemStatusFailed},
	}
}

func TestFilterItems_NoFilters(t *testing.T) {
	items := sampleItems()

	filtered := filterItems(items, "", "")

	if len(filtered) != 3 {
		t.Errorf("filterItems returned %d items, want all 3", len(filtered))
	}
}

func TestFilterItems_TextMatchesTitle(t *testing.T) {
	filtered := filterItems(sampleItems(), "channels", "")

	if len(filtered) != 1 || filtered[0].ID != "1" {
		t.Errorf("filterItems = %v, want item 1", filtered)
	}
}

func TestFilterItems_TextMatchesURL(t *testing.T) {
	filtered := filterItems(sampleItems(), "rust", "")

	if len(filtered) != 1 || filtered[0].ID != "2" {
		t.Errorf("filterItems = %v, want item 2", filtered)
	}
}

func TestFilterItems_TextCaseInsensitive(t *testing.T) {
	filtered := filterItems(sampleItems(), "CHANNELS", "")

	if len(filtered) != 1 {
		t.Errorf("filterItems returned %d items, want 1", len(filtered))
	}
}

func TestFilterItems_Status(t *testing.T) {
	filtered := filterItems(sampleItems(), "", "FAILED")

	if len(filtered) != 1 || filtered[0].ID != "3" {
		t.Errorf("filterItems = %v, want item 3", filtered)
	}
}

func TestFilterItems_TextAndStatus(t *testing.T) {
	filtered := filterItems(sampleItems(), "example.com", "COMPLETED")

	if len(filtered) != 2 {
		t.Errorf("filterItems returned %d items, want 2", len(filtered))
	}
}
