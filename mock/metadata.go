package mock

import (
	"context"

	"github.com/fwojciec/showcase"
)

var _ showcase.MetadataReader = (*MetadataReader)(nil)

// MetadataReader is a mock implementation of showcase.MetadataReader.
type MetadataReader struct {
	ReadMetadataFn func(ctx context.Context, path string) (showcase.Metadata, error)
}

func (r *MetadataReader) ReadMetadata(ctx context.Context, path string) (showcase.Metadata, error) {
	return r.ReadMetadataFn(ctx, path)
}
