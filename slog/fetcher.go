package slog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/webmcp"
)

// Ensure LoggingFetcher implements webmcp.PageFetcher.
var _ webmcp.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with debug logging of every request.
type LoggingFetcher struct {
	next   webmcp.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webmcp.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *webmcp.Page, err error) {
	defer func(begin time.Time) {
		f.log(ctx, http.MethodGet, url, page, begin, err)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Head delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Head(ctx context.Context, url string) (page *webmcp.Page, err error) {
	defer func(begin time.Time) {
		f.log(ctx, http.MethodHead, url, page, begin, err)
	}(time.Now())
	return f.next.Head(ctx, url)
}

func (f *LoggingFetcher) log(ctx context.Context, method, url string, page *webmcp.Page, begin time.Time, err error) {
	var status, bytes int
	if page != nil {
		status, bytes = page.StatusCode, len(page.Body)
	}
	f.logger.DebugContext(ctx, "fetch",
		"method", method,
		"url", url,
		"status", status,
		"bytes", bytes,
		"duration", time.Since(begin),
		"err", err,
	)
}
