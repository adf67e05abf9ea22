// Package http implements the webmcp network services on net/http.
package http

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/webmcp"
	"golang.org/x/net/html/charset"
)

// DefaultMaxBodyBytes bounds how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20

// Ensure Fetcher implements webmcp.PageFetcher at compile time.
var _ webmcp.PageFetcher = (*Fetcher)(nil)

// Fetcher performs HTTP requests with a fixed User-Agent and a per-request
// timeout. Any HTTP status is returned as a page; only transport failures
// are errors.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	limiter      webmcp.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to webmcp.DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHTTPClient sets the underlying client. The client is copied so the
// configured timeout does not leak into the caller's client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithMaxBodyBytes bounds how much of each response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l webmcp.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      webmcp.DefaultTimeout,
		userAgent:    webmcp.DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := http.Client{}
	if f.client != nil {
		client = *f.client
	}
	client.Timeout = f.timeout
	f.client = &client

	return f
}

// Fetch issues a GET and returns the page with its body decoded to UTF-8
// from the declared or detected charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*webmcp.Page, error) {
	return f.do(ctx, http.MethodGet, url)
}

// Head issues a HEAD, following redirects, and returns the final page
// without a body.
func (f *Fetcher) Head(ctx context.Context, url string) (*webmcp.Page, error) {
	return f.do(ctx, http.MethodHead, url)
}

func (f *Fetcher) do(ctx context.Context, method, url string) (*webmcp.Page, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Hostname()); err != nil {
			return nil, err
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	page := &webmcp.Page{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}
	if resp.ContentLength > 0 && resp.Header.Get("Content-Length") == "" {
		page.Header.Set("Content-Length", strconv.FormatInt(resp.ContentLength, 10))
	}

	if method == http.MethodHead {
		return page, nil
	}

	var r io.Reader = io.LimitReader(resp.Body, f.maxBodyBytes)
	if decoded, err := charset.NewReader(r, resp.Header.Get("Content-Type")); err == nil {
		r = decoded
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	page.Body = string(body)

	return page, nil
}
