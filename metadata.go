package showcase

import (
	"context"
	"regexp"
	"strings"
)

// Metadata attribute keys declared by page templates.
const (
	MetadataAPIPath  = "api.path"
	MetadataVDLPaths = "vdl.paths"
	MetadataSrcPaths = "src.paths"
	MetadataJSPaths  = "js.paths"
)

var listSeparator = regexp.MustCompile(`\s*,\s*`)

// Metadata holds the attributes a page template declares about itself,
// such as the API path it demonstrates and the source files it shows.
type Metadata map[string]string

// List returns the comma separated values of the attribute with the given
// key. Values are trimmed. A missing or blank attribute yields an empty list.
func (m Metadata) List(key string) []string {
	value := strings.TrimSpace(m[key])
	if value == "" {
		return []string{}
	}

	values := listSeparator.Split(value, -1)

	// Trailing separators do not produce empty values.
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values
}

// MetadataReader reads the metadata attributes of page templates.
type MetadataReader interface {
	// ReadMetadata returns the metadata declared by the template at path.
	// A template without metadata yields empty Metadata.
	ReadMetadata(ctx context.Context, path string) (Metadata, error)
}
