package http

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/showcase"
	"golang.org/x/time/rate"
)

var _ showcase.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so requests to different documentation
// hosts do not wait on each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
// A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limit := rate.Inf
		if d.rps > 0 {
			limit = rate.Limit(d.rps)
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ showcase.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits for the limiter of the URL's host before each fetch.
type LimitedFetcher struct {
	next    showcase.Fetcher
	limiter showcase.DomainLimiter
}

// NewLimitedFetcher wraps next with per-host rate limiting.
func NewLimitedFetcher(next showcase.Fetcher, limiter showcase.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the host's rate limit and delegates to the wrapped fetcher.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", showcase.Errorf(showcase.EINVALID, "invalid URL %q", rawURL)
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
