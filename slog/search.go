package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webmcp"
	"github.com/google/uuid"
)

// Ensure LoggingSearcher implements webmcp.Searcher.
var _ webmcp.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-call logging.
type LoggingSearcher struct {
	next   webmcp.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next webmcp.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the call.
func (s *LoggingSearcher) Search(ctx context.Context, q webmcp.SearchQuery) (resp *webmcp.SearchResponse, err error) {
	defer func(begin time.Time) {
		var count int
		if resp != nil {
			count = resp.ResultsCount
		}
		s.logger.InfoContext(ctx, "web search",
			"request_id", uuid.NewString(),
			"query", q.Query,
			"limit", q.Limit,
			"include_content", q.IncludeContent,
			"results", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, q)
}
