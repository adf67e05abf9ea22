package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmcp"
)

// Ensure ResultParser implements webmcp.ResultParser at compile time.
var _ webmcp.ResultParser = (*ResultParser)(nil)

// Selectors for the DuckDuckGo HTML results page.
const (
	resultSelector  = "div.result"
	titleSelector   = "a.result__a"
	snippetSelector = "a.result__snippet"
)

// redirectPath is the path of the search provider's outbound click tracker.
const redirectPath = "/l/?uddg="

// redirectHosts are stripped from tracker links before matching redirectPath.
var redirectHosts = []string{"https://duckduckgo.com", "//duckduckgo.com"}

// ResultParser extracts search results from a DuckDuckGo HTML results page.
type ResultParser struct{}

// NewResultParser creates a new ResultParser.
func NewResultParser() *ResultParser {
	return &ResultParser{}
}

// ParseResults returns the items of the first limit result blocks in document
// order. Blocks without a title link are skipped.
func (p *ResultParser) ParseResults(html string, limit int) ([]*webmcp.SearchResultItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webmcp.Errorf(webmcp.EMARKUP, "failed to parse HTML: %v", err)
	}

	blocks := doc.Find(resultSelector)
	if limit < 0 {
		limit = 0
	}
	blocks = blocks.Slice(0, min(limit, blocks.Length()))

	var items []*webmcp.SearchResultItem
	blocks.Each(func(_ int, block *goquery.Selection) {
		title := block.Find(titleSelector).First()
		if title.Length() == 0 {
			return
		}
		href, _ := title.Attr("href")

		items = append(items, &webmcp.SearchResultItem{
			Title:   webmcp.NormalizeWhitespace(title.Text()),
			URL:     ResolveRedirect(href),
			Snippet: webmcp.NormalizeWhitespace(block.Find(snippetSelector).First().Text()),
		})
	})

	return items, nil
}

// ResolveRedirect unwraps a DuckDuckGo click-tracking link into its target.
// The target is the value after "uddg=" up to the first "&", percent-decoded.
// Any other href, including an already unwrapped one, is returned unchanged.
func ResolveRedirect(href string) string {
	rest := href
	for _, host := range redirectHosts {
		if strings.HasPrefix(rest, host) {
			rest = strings.TrimPrefix(rest, host)
			break
		}
	}
	if !strings.HasPrefix(rest, redirectPath) {
		return href
	}

	target := strings.TrimPrefix(rest, redirectPath)
	if i := strings.IndexByte(target, '&'); i >= 0 {
		target = target[:i]
	}

	if decoded, err := url.PathUnescape(target); err == nil {
		return decoded
	}
	return unescapeLenient(target)
}

// unescapeLenient decodes every well-formed %XX escape and keeps malformed
// ones as literal text.
func unescapeLenient(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
