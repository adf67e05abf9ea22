// Package opengraph reads descriptive page metadata from OpenGraph tags,
// falling back to standard HTML head elements.
package opengraph

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/fwojciec/webmcp"
)

// Ensure Parser implements webmcp.MetadataParser at compile time.
var _ webmcp.MetadataParser = (*Parser)(nil)

// Parser extracts page metadata from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseMetadata returns the OpenGraph title, description, site name and type
// of the page. A missing title or description falls back to <title> and
// <meta name="description">.
func (p *Parser) ParseMetadata(html string) (*webmcp.PageMetadata, error) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(html)); err != nil {
		return nil, webmcp.Errorf(webmcp.EMARKUP, "failed to parse OpenGraph tags: %v", err)
	}

	meta := &webmcp.PageMetadata{
		Title:       og.Title,
		Description: og.Description,
		SiteName:    og.SiteName,
		Type:        og.Type,
	}

	if meta.Title == "" || meta.Description == "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, webmcp.Errorf(webmcp.EMARKUP, "failed to parse HTML: %v", err)
		}
		if meta.Title == "" {
			meta.Title = doc.Find("head title").First().Text()
		}
		if meta.Description == "" {
			meta.Description, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
		}
	}

	meta.Title = webmcp.NormalizeWhitespace(meta.Title)
	meta.Description = webmcp.NormalizeWhitespace(meta.Description)
	meta.SiteName = webmcp.NormalizeWhitespace(meta.SiteName)
	return meta, nil
}
