package readability

import (
	"strings"

	"github.com/fwojciec/webmcp"
	"github.com/go-shiori/go-readability"
)

// Ensure TextExtractor implements webmcp.TextExtractor at compile time.
var _ webmcp.TextExtractor = (*TextExtractor)(nil)

// TextExtractor wraps go-readability to extract the main article text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the article text of rawHTML with whitespace collapsed
// and bounded to maxLength characters.
func (e *TextExtractor) ExtractText(rawHTML string, maxLength int) (string, error) {
	if rawHTML == "" {
		return "", webmcp.Errorf(webmcp.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", webmcp.Errorf(webmcp.ECONTENT, "readability: %v", err)
	}

	text := webmcp.NormalizeWhitespace(article.TextContent)
	return webmcp.TruncateText(text, maxLength), nil
}
