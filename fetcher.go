package webmcp

import "context"

// PageFetcher performs HTTP requests on behalf of the tools.
type PageFetcher interface {
	// Fetch issues a GET and returns the response with its body.
	// Only transport failures are errors; any HTTP status is a valid page.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Head issues a HEAD, following redirects, and returns the final
	// response without a body.
	Head(ctx context.Context, url string) (*Page, error)
}

// ContentFetcher turns a URL into a bounded plain-text content preview.
type ContentFetcher interface {
	// FetchContent never fails: problems are described in the returned
	// string ("HTTP 404", "Non-HTML content", "Content extraction failed: ...").
	FetchContent(ctx context.Context, url string, maxLength int) string
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
