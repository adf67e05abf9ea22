package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/webmcp"
)

// Ensure Inspector implements webmcp.Inspector at compile time.
var _ webmcp.Inspector = (*Inspector)(nil)

// Inspector reports response metadata for a URL, plus a content preview and
// declared page metadata for HTML pages.
type Inspector struct {
	Fetcher webmcp.PageFetcher
	Content *ContentFetcher

	// Metadata is optional. When nil, no page metadata is attached.
	Metadata webmcp.MetadataParser
}

// NewInspector creates a new Inspector.
func NewInspector(fetcher webmcp.PageFetcher, content *ContentFetcher, metadata webmcp.MetadataParser) *Inspector {
	return &Inspector{
		Fetcher:  fetcher,
		Content:  content,
		Metadata: metadata,
	}
}

// Inspect issues a HEAD to url, following redirects, and describes the final
// response. HTML pages are fetched once more for the preview.
func (i *Inspector) Inspect(ctx context.Context, url string) (*webmcp.URLInfo, error) {
	head, err := i.Fetcher.Head(ctx, url)
	if err != nil {
		return nil, webmcp.Errorf(webmcp.ENETWORK, "URL analysis failed: %v", err)
	}

	info := &webmcp.URLInfo{
		URL:           head.URL,
		StatusCode:    head.StatusCode,
		ContentType:   head.HeaderValue("Content-Type", webmcp.Unknown),
		ContentLength: head.HeaderValue("Content-Length", webmcp.Unknown),
		Server:        head.HeaderValue("Server", webmcp.Unknown),
		LastModified:  head.HeaderValue("Last-Modified", webmcp.Unknown),
	}
	if !head.IsHTML() {
		return info, nil
	}

	page, err := i.Fetcher.Fetch(ctx, head.URL)
	if err != nil {
		preview := fmt.Sprintf("Content extraction failed: %v", err)
		info.ContentPreview = &preview
		return info, nil
	}
	preview := i.Content.Preview(page, webmcp.PreviewContentLength)
	info.ContentPreview = &preview

	if i.Metadata != nil && page.StatusCode == http.StatusOK && page.IsHTML() {
		if meta, err := i.Metadata.ParseMetadata(page.Body); err == nil {
			info.Title = meta.Title
			info.Description = meta.Description
			info.SiteName = meta.SiteName
		}
	}

	return info, nil
}

