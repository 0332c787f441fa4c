package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/showcase"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ showcase.PageStore = (*PageStore)(nil)

// PageStore implements showcase.PageStore using SQLite. Saved pages are
// written in a transaction that is committed by Commit and rolled back by
// Abort. A saved page replaces the stored page with the same view ID.
type PageStore struct {
	db *DB

	mu sync.Mutex
	tx *sql.Tx
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Save writes the page and its sources in the pending transaction,
// starting one if needed.
func (s *PageStore) Save(ctx context.Context, page *showcase.Page) error {
	if page.ViewID() == "" {
		return showcase.Errorf(showcase.EINVALID, "view ID required")
	}

	var documentation sql.NullString
	if doc := page.Documentation(); doc != nil {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		documentation = sql.NullString{String: string(data), Valid: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		// The transaction outlives the context of a single save.
		tx, err := s.db.BeginTx(context.WithoutCancel(ctx), nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
	}

	if _, err := s.tx.ExecContext(ctx, `DELETE FROM pages WHERE view_id = ?`, page.ViewID()); err != nil {
		return err
	}

	id := uuid.New().String()
	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO pages (id, view_id, title, description, documentation, exported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, page.ViewID(), page.Title(), page.Description(), documentation,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, src := range page.Sources() {
		_, err := s.tx.ExecContext(ctx, `
			INSERT INTO sources (page_id, position, title, type, code, content_hash)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, i, src.Title, src.Type, src.Code, hashContent(src.Code))
		if err != nil {
			return err
		}
	}

	return nil
}

// Commit commits the pending transaction. It is a no-op when nothing was
// saved.
func (s *PageStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	return err
}

// Abort rolls back the pending transaction.
func (s *PageStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}

// FindSources returns the stored sources of the page with the given view
// ID in display order. Only committed pages are visible; the call waits
// while a transaction is pending.
func (s *PageStore) FindSources(ctx context.Context, viewID string) ([]showcase.Source, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.title, s.type, s.code
		FROM sources s
		JOIN pages p ON p.id = s.page_id
		WHERE p.view_id = ?
		ORDER BY s.position ASC
	`, viewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []showcase.Source
	for rows.Next() {
		var src showcase.Source
		if err := rows.Scan(&src.Title, &src.Type, &src.Code); err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// FindDocumentation returns the stored documentation of the page with the
// given view ID. It returns nil for pages without documentation.
func (s *PageStore) FindDocumentation(ctx context.Context, viewID string) (*showcase.Documentation, error) {
	var data sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT documentation FROM pages WHERE view_id = ?`, viewID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, showcase.Errorf(showcase.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}
	if !data.Valid {
		return nil, nil
	}

	var doc showcase.Documentation
	if err := json.Unmarshal([]byte(data.String), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse documentation: %w", err)
	}
	return &doc, nil
}
