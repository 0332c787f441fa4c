package mock

import (
	"context"

	"github.com/fwojciec/showcase"
)

var _ showcase.ResourceLoader = (*ResourceLoader)(nil)

// ResourceLoader is a mock implementation of showcase.ResourceLoader.
type ResourceLoader struct {
	LoadResourceFn func(ctx context.Context, path string) ([]byte, error)
}

func (l *ResourceLoader) LoadResource(ctx context.Context, path string) ([]byte, error) {
	return l.LoadResourceFn(ctx, path)
}

// Resources returns a ResourceLoader serving the given path to content map.
// Paths missing from the map report ENOTFOUND.
func Resources(files map[string]string) *ResourceLoader {
	return &ResourceLoader{
		LoadResourceFn: func(_ context.Context, path string) ([]byte, error) {
			content, ok := files[path]
			if !ok {
				return nil, showcase.Errorf(showcase.ENOTFOUND, "resource %q not found", path)
			}
			return []byte(content), nil
		},
	}
}
