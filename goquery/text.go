package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmcp"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements webmcp.TextExtractor at compile time.
var _ webmcp.TextExtractor = (*TextExtractor)(nil)

// contentClass matches class attributes that commonly wrap the main content.
var contentClass = regexp.MustCompile(`(?i)content|main|article`)

// regionFinders locate the main content region, in order of preference.
// The first finder returning a non-empty selection wins.
var regionFinders = []func(doc *goquery.Document) *goquery.Selection{
	func(doc *goquery.Document) *goquery.Selection { return doc.Find("main").First() },
	func(doc *goquery.Document) *goquery.Selection { return doc.Find("article").First() },
	func(doc *goquery.Document) *goquery.Selection {
		return doc.Find("[class]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			class, _ := sel.Attr("class")
			return contentClass.MatchString(class)
		}).First()
	},
	func(doc *goquery.Document) *goquery.Selection { return doc.Find("body").First() },
}

// TextExtractor flattens the main content region of a page into plain text
// using heuristic selectors.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText parses HTML, drops scripts and styles, picks the main content
// region and returns its text with whitespace collapsed and bounded to
// maxLength characters.
func (e *TextExtractor) ExtractText(rawHTML string, maxLength int) (string, error) {
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", webmcp.Errorf(webmcp.EMARKUP, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	doc.Find("script, style").Remove()

	region := doc.Selection
	for _, find := range regionFinders {
		if sel := find(doc); sel.Length() > 0 {
			region = sel
			break
		}
	}

	var parts []string
	for _, n := range region.Nodes {
		parts = appendText(parts, n)
	}

	text := webmcp.NormalizeWhitespace(strings.Join(parts, " "))
	return webmcp.TruncateText(text, maxLength), nil
}

// appendText appends the trimmed, non-empty text nodes under n in document order.
func appendText(parts []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			parts = append(parts, s)
		}
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendText(parts, c)
	}
	return parts
}
