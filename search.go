package webmcp

import (
	"context"
	"encoding/json"
	"strings"
)

// DefaultSearchLimit is the number of results returned when a caller does not
// ask for a specific limit.
const DefaultSearchLimit = 5

// DefaultContentLength bounds the content attached to each search result.
const DefaultContentLength = 2000

// SearchQuery is a single web search request.
type SearchQuery struct {
	Query          string
	Limit          int
	IncludeContent bool
}

// Validate returns an error if the query contains invalid fields.
func (q *SearchQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return Errorf(EINVALID, "query required")
	}
	if q.Limit < 1 {
		return Errorf(EINVALID, "limit must be at least 1, got %d", q.Limit)
	}
	return nil
}

// SearchResultItem is one result block from the search results page.
type SearchResultItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`

	// Content is a plain-text preview of the linked page, or a description
	// of why it could not be produced. Nil when content was not requested.
	Content *string `json:"content,omitempty"`
}

// SearchResponse is the outcome of a web search. A non-empty Error means the
// search failed and the remaining fields are meaningless.
type SearchResponse struct {
	Query        string
	ResultsCount int
	Results      []*SearchResultItem
	Error        string
}

// NewSearchError returns a failed SearchResponse carrying the message of err.
func NewSearchError(err error) *SearchResponse {
	return &SearchResponse{Error: ErrorMessage(err)}
}

// MarshalJSON encodes the response as either {query, results_count, results}
// or {error}; the two shapes never mix.
func (r SearchResponse) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}

	results := r.Results
	if results == nil {
		results = []*SearchResultItem{}
	}
	return json.Marshal(struct {
		Query        string              `json:"query"`
		ResultsCount int                 `json:"results_count"`
		Results      []*SearchResultItem `json:"results"`
	}{r.Query, r.ResultsCount, results})
}

// Searcher performs web searches.
type Searcher interface {
	// Search runs the query against the search provider.
	// Returns EINVALID for a malformed query, ENETWORK when the provider
	// cannot be reached and EUPSTREAM when it answers with a non-200 status.
	// Failures to fetch individual result pages never fail the search.
	Search(ctx context.Context, q SearchQuery) (*SearchResponse, error)
}

// ResultParser extracts result items from a search results page.
type ResultParser interface {
	// ParseResults returns up to limit items in document order.
	// Result blocks without a title link are skipped and do not count
	// toward the limit.
	ParseResults(html string, limit int) ([]*SearchResultItem, error)
}
