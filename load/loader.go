// Package load assembles the content of showcase pages from their
// template metadata, API documentation and source files.
package load

import (
	"context"

	"github.com/fwojciec/showcase"
)

// Ensure Loader implements showcase.ContentLoader at compile time.
var _ showcase.ContentLoader = (*Loader)(nil)

// Loader loads page content. All fields are required.
type Loader struct {
	Resources    showcase.ResourceLoader
	Metadata     showcase.MetadataReader
	Descriptions showcase.DescriptionLoader
}

// LoadContent implements showcase.ContentLoader. Any failure aborts
// loading and no partial content is returned.
func (l *Loader) LoadContent(ctx context.Context, page *showcase.Page) (*showcase.Content, error) {
	metadata, err := l.Metadata.ReadMetadata(ctx, page.Path())
	if err != nil {
		return nil, err
	}

	description, err := l.Descriptions.LoadDescription(ctx, metadata.List(showcase.MetadataAPIPath))
	if err != nil {
		return nil, err
	}

	sources, err := showcase.LoadSources(ctx, l.Resources, page.Path(), metadata.List(showcase.MetadataSrcPaths))
	if err != nil {
		return nil, err
	}

	return &showcase.Content{
		Description: description.HTML,
		Sources:     sources,
		Documentation: showcase.NewDocumentation(
			description.APIPaths,
			metadata.List(showcase.MetadataVDLPaths),
			metadata.List(showcase.MetadataJSPaths),
		),
	}, nil
}
