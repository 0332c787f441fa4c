// Package fs provides file-based implementations of the showcase services:
// resource loading from a web application root, menu discovery, and page
// export to markdown files.
package fs

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/showcase"
)

// Ensure ResourceLoader implements showcase.ResourceLoader at compile time.
var _ showcase.ResourceLoader = (*ResourceLoader)(nil)

// ResourceLoader reads resources from a web application root directory.
type ResourceLoader struct {
	root string
}

// NewResourceLoader creates a ResourceLoader reading below root.
func NewResourceLoader(root string) *ResourceLoader {
	return &ResourceLoader{root: root}
}

// LoadResource reads the resource at the slash separated path. Paths are
// always resolved inside the root, so ".." cannot escape it.
func (l *ResourceLoader) LoadResource(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := strings.TrimPrefix(path.Clean("/"+p), "/")
	if rel == "" {
		return nil, showcase.Errorf(showcase.ENOTFOUND, "resource %q not found", p)
	}

	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(rel)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, showcase.Errorf(showcase.ENOTFOUND, "resource %q not found", p)
	} else if err != nil {
		return nil, err
	}
	return data, nil
}
