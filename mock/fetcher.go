package mock

import (
	"context"

	"github.com/fwojciec/webmcp"
)

// Compile-time interface verification.
var (
	_ webmcp.PageFetcher    = (*PageFetcher)(nil)
	_ webmcp.ContentFetcher = (*ContentFetcher)(nil)
	_ webmcp.DomainLimiter  = (*DomainLimiter)(nil)
)

// PageFetcher is a mock implementation of webmcp.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (*webmcp.Page, error)
	HeadFn  func(ctx context.Context, url string) (*webmcp.Page, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (*webmcp.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *PageFetcher) Head(ctx context.Context, url string) (*webmcp.Page, error) {
	return f.HeadFn(ctx, url)
}

// ContentFetcher is a mock implementation of webmcp.ContentFetcher.
type ContentFetcher struct {
	FetchContentFn func(ctx context.Context, url string, maxLength int) string
}

func (f *ContentFetcher) FetchContent(ctx context.Context, url string, maxLength int) string {
	return f.FetchContentFn(ctx, url, maxLength)
}

// DomainLimiter is a mock implementation of webmcp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
