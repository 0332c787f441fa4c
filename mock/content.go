package mock

import (
	"context"

	"github.com/fwojciec/showcase"
)

// Compile-time interface verification.
var (
	_ showcase.ContentLoader = (*ContentLoader)(nil)
	_ showcase.PageStore     = (*PageStore)(nil)
	_ showcase.MenuBuilder   = (*MenuBuilder)(nil)
)

// ContentLoader is a mock implementation of showcase.ContentLoader.
type ContentLoader struct {
	LoadContentFn func(ctx context.Context, page *showcase.Page) (*showcase.Content, error)
}

func (l *ContentLoader) LoadContent(ctx context.Context, page *showcase.Page) (*showcase.Content, error) {
	return l.LoadContentFn(ctx, page)
}

// PageStore is a mock implementation of showcase.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *showcase.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *showcase.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// MenuBuilder is a mock implementation of showcase.MenuBuilder.
type MenuBuilder struct {
	BuildMenuFn func(ctx context.Context) (*showcase.Menu, error)
}

func (b *MenuBuilder) BuildMenu(ctx context.Context) (*showcase.Menu, error) {
	return b.BuildMenuFn(ctx)
}
