package showcase

import "context"

// APIPackagePath qualifies the API paths declared by pages. It is also the
// marker used to recognize API paths inside documentation links.
const APIPackagePath = "org/omnifaces/"

// Description is the API documentation scraped for a page.
type Description struct {
	// HTML is the description fragment. Empty when the page has no
	// description.
	HTML string

	// APIPaths is the page's API path list after description loading:
	// the qualified API path followed by any "see also" references found
	// in the documentation. When no description was loaded it equals the
	// requested paths.
	APIPaths []string
}

// DescriptionLoader loads page descriptions from API documentation.
type DescriptionLoader interface {
	// LoadDescription loads the description for a page declaring apiPaths.
	// A description is only loaded when exactly one API path is declared;
	// otherwise no documentation is fetched. The apiPaths slice is never
	// modified.
	LoadDescription(ctx context.Context, apiPaths []string) (*Description, error)
}
