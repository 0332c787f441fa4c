package showcase

import "context"

// ResourceLoader reads raw resources, such as page templates and source
// files, from the web application.
type ResourceLoader interface {
	// LoadResource returns the content of the resource at path.
	// Paths are slash separated and rooted at the web application root.
	// Returns ENOTFOUND if no resource exists at path.
	LoadResource(ctx context.Context, path string) ([]byte, error)
}
