package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fwojciec/webmcp"
	"golang.org/x/sync/errgroup"
)

// Ensure Searcher implements webmcp.Searcher at compile time.
var _ webmcp.Searcher = (*Searcher)(nil)

// Searcher queries the DuckDuckGo HTML endpoint and optionally attaches the
// content of every result page.
type Searcher struct {
	Fetcher webmcp.PageFetcher
	Parser  webmcp.ResultParser
	Content webmcp.ContentFetcher

	// Endpoint is the results page URL. Defaults to webmcp.DefaultSearchEndpoint.
	Endpoint string

	// Region is sent as the kl parameter. Defaults to webmcp.DefaultRegion.
	Region string

	// Concurrency bounds parallel content fetches. Values below 1 mean 1.
	Concurrency int
}

// NewSearcher creates a Searcher using the default endpoint and region.
func NewSearcher(fetcher webmcp.PageFetcher, parser webmcp.ResultParser, content webmcp.ContentFetcher) *Searcher {
	return &Searcher{
		Fetcher:     fetcher,
		Parser:      parser,
		Content:     content,
		Endpoint:    webmcp.DefaultSearchEndpoint,
		Region:      webmcp.DefaultRegion,
		Concurrency: 1,
	}
}

// Search runs q against the search endpoint.
func (s *Searcher) Search(ctx context.Context, q webmcp.SearchQuery) (*webmcp.SearchResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, webmcp.Errorf(webmcp.ErrorCode(err), "Search failed: %s", webmcp.ErrorMessage(err))
	}

	searchURL, err := s.searchURL(q.Query)
	if err != nil {
		return nil, webmcp.Errorf(webmcp.EINVALID, "Search failed: %v", err)
	}

	page, err := s.Fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, webmcp.Errorf(webmcp.ENETWORK, "Search failed: %v", err)
	}
	if page.StatusCode != http.StatusOK {
		return nil, webmcp.Errorf(webmcp.EUPSTREAM, "Search failed with status %d", page.StatusCode)
	}

	items, err := s.Parser.ParseResults(page.Body, q.Limit)
	if err != nil {
		return nil, webmcp.Errorf(webmcp.ErrorCode(err), "Search failed: %s", webmcp.ErrorMessage(err))
	}

	if q.IncludeContent {
		s.attachContent(ctx, items)
	}

	return &webmcp.SearchResponse{
		Query:        q.Query,
		ResultsCount: len(items),
		Results:      items,
	}, nil
}

func (s *Searcher) searchURL(query string) (string, error) {
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = webmcp.DefaultSearchEndpoint
	}
	region := s.Region
	if region == "" {
		region = webmcp.DefaultRegion
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	params := u.Query()
	params.Set("q", query)
	params.Set("kl", region)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// attachContent fills in Content for every item with a URL. Each goroutine
// writes only its own item, so results keep document order.
func (s *Searcher) attachContent(ctx context.Context, items []*webmcp.SearchResultItem) {
	var g errgroup.Group
	g.SetLimit(max(s.Concurrency, 1))

	for _, item := range items {
		if item.URL == "" {
			continue
		}
		g.Go(func() error {
			content := s.Content.FetchContent(ctx, item.URL, webmcp.DefaultContentLength)
			item.Content = &content
			return nil
		})
	}

	_ = g.Wait()
}
