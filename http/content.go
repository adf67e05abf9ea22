package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/webmcp"
)

// Ensure ContentFetcher implements webmcp.ContentFetcher at compile time.
var _ webmcp.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher fetches pages and turns them into bounded plain text.
// Problems never surface as errors; they are described in the returned text.
type ContentFetcher struct {
	Fetcher   webmcp.PageFetcher
	Extractor webmcp.TextExtractor
}

// NewContentFetcher creates a new ContentFetcher.
func NewContentFetcher(fetcher webmcp.PageFetcher, extractor webmcp.TextExtractor) *ContentFetcher {
	return &ContentFetcher{
		Fetcher:   fetcher,
		Extractor: extractor,
	}
}

// FetchContent downloads url and returns its main content text.
func (c *ContentFetcher) FetchContent(ctx context.Context, url string, maxLength int) string {
	page, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Sprintf("Content extraction failed: %v", err)
	}
	return c.Preview(page, maxLength)
}

// Preview returns the main content text of an already fetched page.
// The status is checked before the content type.
func (c *ContentFetcher) Preview(page *webmcp.Page, maxLength int) string {
	if page.StatusCode != http.StatusOK {
		return fmt.Sprintf("HTTP %d", page.StatusCode)
	}
	if !page.IsHTML() {
		return "Non-HTML content"
	}

	text, err := c.Extractor.ExtractText(page.Body, maxLength)
	if err != nil {
		return "Content extraction failed: " + webmcp.ErrorMessage(err)
	}
	return text
}
