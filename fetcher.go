package showcase

import "context"

// Fetcher retrieves HTML documents from URLs.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
