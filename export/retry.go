package export

import (
	"context"
	"time"

	"github.com/fwojciec/showcase"
)

// DefaultRetryDelays returns the backoff delays for page load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// LoadWithRetryDelays loads page, retrying after each delay while loading
// fails. A failed load leaves the page unloaded, so every attempt starts
// over. Pages with invalid or missing resources are not retried.
func LoadWithRetryDelays(ctx context.Context, page *showcase.Page, loader showcase.ContentLoader, delays []time.Duration) error {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := page.LoadIfNecessary(ctx, loader)
		if err == nil {
			return nil
		}
		lastErr = err

		switch showcase.ErrorCode(err) {
		case showcase.EINVALID, showcase.ENOTFOUND:
			return err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
