package http

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/webmcp"
	"golang.org/x/time/rate"
)

var _ webmcp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host. The search endpoint
// and every result page get their own bucket, so content fetches for
// different sites never wait on each other.
type DomainLimiter struct {
	limit rate.Limit

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter admitting rps requests per second to
// each host. A non-positive rps admits everything.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limit:   limit,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until host may be requested again or ctx is done. Host names
// are compared case-insensitively.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if d.limit == rate.Inf {
		return ctx.Err()
	}
	return d.bucket(strings.ToLower(host)).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[host]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.buckets[host] = b
	}
	return b
}
