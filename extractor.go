package webmcp

// TextExtractor flattens the main content of an HTML page into text.
type TextExtractor interface {
	// ExtractText locates the main content region of the page, strips
	// markup, collapses whitespace and bounds the result to maxLength
	// characters (plus TruncationMarker when cut).
	ExtractText(html string, maxLength int) (string, error)
}

// PageMetadata holds descriptive metadata declared by a page.
type PageMetadata struct {
	Title       string
	Description string
	SiteName    string
	Type        string
}

// MetadataParser reads descriptive metadata from HTML.
type MetadataParser interface {
	ParseMetadata(html string) (*PageMetadata, error)
}
