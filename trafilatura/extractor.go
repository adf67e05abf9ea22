// Package trafilatura extracts page text with go-trafilatura, falling back
// to its readability and dom-distiller heuristics when needed.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/webmcp"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure TextExtractor implements webmcp.TextExtractor at compile time.
var _ webmcp.TextExtractor = (*TextExtractor)(nil)

// TextExtractor wraps go-trafilatura to extract the main content text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the main content text of rawHTML with whitespace
// collapsed and bounded to maxLength characters.
func (e *TextExtractor) ExtractText(rawHTML string, maxLength int) (string, error) {
	if rawHTML == "" {
		return "", webmcp.Errorf(webmcp.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", webmcp.Errorf(webmcp.ECONTENT, "trafilatura: %v", err)
	}

	text := webmcp.NormalizeWhitespace(result.ContentText)
	return webmcp.TruncateText(text, maxLength), nil
}
