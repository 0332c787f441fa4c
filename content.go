package showcase

import "context"

// Content is the lazily loaded part of a page.
type Content struct {
	Description   string
	Sources       []Source
	Documentation *Documentation
}

// ContentLoader loads the content of pages.
type ContentLoader interface {
	// LoadContent loads the description, sources and documentation of
	// page. Implementations must not return partial content on error.
	LoadContent(ctx context.Context, page *Page) (*Content, error)
}

// PageStore persists loaded pages with atomic semantics.
// Save writes to a pending location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
