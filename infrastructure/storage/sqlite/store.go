// ABOUTME: SQLite-backed storage for saved items
// ABOUTME: Enforces (owner, URL) uniqueness at the schema level

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"stash-app-api/core/domain"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements the ItemStorage interface using SQLite
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite item store at the given path
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "stash.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates the saved_items table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS saved_items (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			url TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			markdown TEXT NOT NULL DEFAULT '',
			og_image TEXT NOT NULL DEFAULT '',
			published_at TIMESTAMP,
			summary TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE(owner_id, url)
		);
		CREATE INDEX IF NOT EXISTS idx_saved_items_owner ON saved_items(owner_id);
	`

	_, err := s.db.Exec(query)
	return err
}

// Create persists a new saved item. Inserting a second item with the same
// (owner, URL) fails on the unique constraint.
func (s *Store) Create(ctx context.Context, item *domain.SavedItem) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO saved_items
			(id, owner_id, url, title, author, content, markdown, og_image,
			 published_at, summary, tags, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		item.ID, item.OwnerID, item.URL, item.Title, item.Author,
		item.Content, item.Markdown, item.OGImage, nullableTime(item.PublishedAt),
		item.Summary, string(tags), string(item.Status),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by id scoped to its owner.
// Returns (nil, nil) when no such item exists.
func (s *Store) GetByID(ctx context.Context, ownerID, id string) (*domain.SavedItem, error) {
	row := s.db.QueryRowContext(ctx,
		selectColumns+" FROM saved_items WHERE owner_id = ? AND id = ?",
		ownerID, id,
	)
	return scanItem(row)
}

// GetByURL retrieves the owner's item for a URL.
// Returns (nil, nil) when no such item exists.
func (s *Store) GetByURL(ctx context.Context, ownerID, url string) (*domain.SavedItem, error) {
	row := s.db.QueryRowContext(ctx,
		selectColumns+" FROM saved_items WHERE owner_id = ? AND url = ?",
		ownerID, url,
	)
	return scanItem(row)
}

// ExistsByURL reports whether the owner already saved the URL
func (s *Store) ExistsByURL(ctx context.Context, ownerID, url string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM saved_items WHERE owner_id = ? AND url = ?",
		ownerID, url,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}

	return count > 0, nil
}

// ListByOwner returns all items for the owner, newest first
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SavedItem, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+" FROM saved_items WHERE owner_id = ? ORDER BY created_at DESC",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.SavedItem, 0)
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateSummary sets the item's summary and tags in a single write
func (s *Store) UpdateSummary(ctx context.Context, ownerID, id, summary string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE saved_items SET summary = ?, tags = ?, updated_at = ? WHERE owner_id = ? AND id = ?",
		summary, string(encoded), time.Now(), ownerID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes an item scoped to its owner
func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM saved_items WHERE owner_id = ? AND id = ?",
		ownerID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

const selectColumns = `SELECT id, owner_id, url, title, author, content, markdown, og_image,
	published_at, summary, tags, status, created_at, updated_at`

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row *sql.Row) (*domain.SavedItem, error) {
	item, err := scanItemRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return item, err
}

func scanItemRow(row rowScanner) (*domain.SavedItem, error) {
	var item domain.SavedItem
	var publishedAt sql.NullTime
	var tags string
	var status string

	err := row.Scan(
		&item.ID, &item.OwnerID, &item.URL, &item.Title, &item.Author,
		&item.Content, &item.Markdown, &item.OGImage, &publishedAt,
		&item.Summary, &tags, &status, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if publishedAt.Valid {
		item.PublishedAt = &publishedAt.Time
	}
	if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	item.Status = domain.ItemStatus(status)

	return &item, nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
