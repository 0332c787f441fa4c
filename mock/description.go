package mock

import (
	"context"

	"github.com/fwojciec/showcase"
)

var _ showcase.DescriptionLoader = (*DescriptionLoader)(nil)

// DescriptionLoader is a mock implementation of showcase.DescriptionLoader.
type DescriptionLoader struct {
	LoadDescriptionFn func(ctx context.Context, apiPaths []string) (*showcase.Description, error)
}

func (l *DescriptionLoader) LoadDescription(ctx context.Context, apiPaths []string) (*showcase.Description, error) {
	return l.LoadDescriptionFn(ctx, apiPaths)
}
