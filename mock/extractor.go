package mock

import "github.com/fwojciec/webmcp"

var (
	_ webmcp.TextExtractor  = (*TextExtractor)(nil)
	_ webmcp.MetadataParser = (*MetadataParser)(nil)
)

// TextExtractor is a mock implementation of webmcp.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string, maxLength int) (string, error)
}

func (e *TextExtractor) ExtractText(html string, maxLength int) (string, error) {
	return e.ExtractTextFn(html, maxLength)
}

// MetadataParser is a mock implementation of webmcp.MetadataParser.
type MetadataParser struct {
	ParseMetadataFn func(html string) (*webmcp.PageMetadata, error)
}

func (p *MetadataParser) ParseMetadata(html string) (*webmcp.PageMetadata, error) {
	return p.ParseMetadataFn(html)
}
