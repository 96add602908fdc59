// ABOUTME: SavedItem domain model represents a web page saved to a user's library
// ABOUTME: Carries scraped content, derived summary/tags, and ingestion status

package domain

import "time"

// ItemStatus reflects the outcome of ingesting a saved item.
type ItemStatus string

const (
	// ItemStatusPending means the item has been created but not fully ingested
	ItemStatusPending ItemStatus = "PENDING"

	// ItemStatusCompleted means the item was scraped and persisted successfully
	ItemStatusCompleted ItemStatus = "COMPLETED"

	// ItemStatusFailed means ingestion of the item failed
	ItemStatusFailed ItemStatus = "FAILED"
)

// SavedItem represents a single saved web page in a user's library
type SavedItem struct {
	// ID is the unique identifier for the item
	ID string `json:"id"`

	// OwnerID identifies the user the item belongs to
	OwnerID string `json:"ownerId"`

	// URL is the source address the item was scraped from.
	// (OwnerID, URL) is unique per library.
	URL string `json:"url"`

	// Content fields extracted by scraping; all optional since
	// extraction may only partially succeed
	Title       string     `json:"title,omitempty"`
	Author      string     `json:"author,omitempty"`
	Content     string     `json:"content,omitempty"`
	Markdown    string     `json:"markdown,omitempty"`
	OGImage     string     `json:"ogImage,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	// Derived fields produced asynchronously by summarization
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`

	// Status reflects the ingestion outcome
	Status ItemStatus `json:"status"`

	// Timestamps
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasContent reports whether the item carries summarizable body text
func (i *SavedItem) HasContent() bool {
	return i.Content != ""
}

// ScrapedContent holds the fields extracted from a single URL
type ScrapedContent struct {
	// Title is the extracted page title
	Title string

	// Author is the extracted byline, if any
	Author string

	// TextContent is the plain-text article body
	TextContent string

	// Markdown is the article body converted to markdown
	Markdown string

	// OGImage is the page's cover image URL
	OGImage string

	// PublishedAt is the extracted publication time, if any
	PublishedAt *time.Time
}
