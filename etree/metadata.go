// Package etree reads the metadata declared by page templates using the
// etree XML library.
package etree

import (
	"context"
	"encoding/xml"

	"github.com/beevik/etree"
	"github.com/fwojciec/showcase"
)

// Ensure MetadataReader implements showcase.MetadataReader at compile time.
var _ showcase.MetadataReader = (*MetadataReader)(nil)

// MetadataReader reads the <f:attribute> elements of a template's
// <f:metadata> section.
type MetadataReader struct {
	resources showcase.ResourceLoader
}

// NewMetadataReader creates a MetadataReader loading templates from resources.
func NewMetadataReader(resources showcase.ResourceLoader) *MetadataReader {
	return &MetadataReader{resources: resources}
}

// ReadMetadata implements showcase.MetadataReader. A missing template
// yields empty Metadata.
func (r *MetadataReader) ReadMetadata(ctx context.Context, path string) (showcase.Metadata, error) {
	data, err := r.resources.LoadResource(ctx, path)
	if showcase.ErrorCode(err) == showcase.ENOTFOUND {
		return showcase.Metadata{}, nil
	} else if err != nil {
		return nil, err
	}

	metadata, err := ParseMetadata(data)
	if err != nil {
		return nil, showcase.Errorf(showcase.EINVALID, "invalid template %s: %s", path, showcase.ErrorMessage(err))
	}
	return metadata, nil
}

// ParseMetadata parses a template and returns the name/value pairs of the
// attribute elements nested directly in its metadata elements. Namespace
// prefixes are ignored. Later attributes override earlier ones.
func ParseMetadata(data []byte) (showcase.Metadata, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = xml.HTMLEntity
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, showcase.Errorf(showcase.EINVALID, "parsing template XML: %v", err)
	}

	metadata := showcase.Metadata{}
	root := doc.Root()
	if root == nil {
		return metadata, nil
	}
	collectAttributes(root, metadata)
	return metadata, nil
}

func collectAttributes(elem *etree.Element, metadata showcase.Metadata) {
	for _, child := range elem.ChildElements() {
		if child.Tag == "attribute" && elem.Tag == "metadata" {
			name := child.SelectAttrValue("name", "")
			if name != "" {
				metadata[name] = child.SelectAttrValue("value", "")
			}
			continue
		}
		collectAttributes(child, metadata)
	}
}
