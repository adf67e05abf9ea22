package mock

import (
	"context"

	"github.com/fwojciec/webmcp"
)

var (
	_ webmcp.Searcher     = (*Searcher)(nil)
	_ webmcp.ResultParser = (*ResultParser)(nil)
	_ webmcp.Inspector    = (*Inspector)(nil)
)

// Searcher is a mock implementation of webmcp.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q webmcp.SearchQuery) (*webmcp.SearchResponse, error)
}

func (s *Searcher) Search(ctx context.Context, q webmcp.SearchQuery) (*webmcp.SearchResponse, error) {
	return s.SearchFn(ctx, q)
}

// ResultParser is a mock implementation of webmcp.ResultParser.
type ResultParser struct {
	ParseResultsFn func(html string, limit int) ([]*webmcp.SearchResultItem, error)
}

func (p *ResultParser) ParseResults(html string, limit int) ([]*webmcp.SearchResultItem, error) {
	return p.ParseResultsFn(html, limit)
}

// Inspector is a mock implementation of webmcp.Inspector.
type Inspector struct {
	InspectFn func(ctx context.Context, url string) (*webmcp.URLInfo, error)
}

func (i *Inspector) Inspect(ctx context.Context, url string) (*webmcp.URLInfo, error) {
	return i.InspectFn(ctx, url)
}
