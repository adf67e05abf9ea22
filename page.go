package webmcp

import (
	"net/http"
	"strings"
)

// Page is the outcome of a single HTTP exchange. Non-2xx responses are still
// pages; callers decide what a status means.
type Page struct {
	URL        string // final URL after redirects
	StatusCode int
	Header     http.Header
	Body       string // empty for HEAD requests
}

// ContentType returns the Content-Type header, or "" if absent.
func (p *Page) ContentType() string {
	return p.Header.Get("Content-Type")
}

// IsHTML reports whether the page declares an HTML content type.
func (p *Page) IsHTML() bool {
	return strings.Contains(strings.ToLower(p.ContentType()), "text/html")
}

// HeaderValue returns the named header, or fallback if it was not sent.
func (p *Page) HeaderValue(name, fallback string) string {
	if v := p.Header.Get(name); v != "" {
		return v
	}
	return fallback
}
