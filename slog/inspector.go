package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webmcp"
	"github.com/google/uuid"
)

// Ensure LoggingInspector implements webmcp.Inspector.
var _ webmcp.Inspector = (*LoggingInspector)(nil)

// LoggingInspector wraps an Inspector with per-call logging.
type LoggingInspector struct {
	next   webmcp.Inspector
	logger *slog.Logger
}

// NewLoggingInspector creates a new LoggingInspector.
func NewLoggingInspector(next webmcp.Inspector, logger *slog.Logger) *LoggingInspector {
	return &LoggingInspector{next: next, logger: logger}
}

// Inspect delegates to the wrapped inspector and logs the call.
func (i *LoggingInspector) Inspect(ctx context.Context, url string) (info *webmcp.URLInfo, err error) {
	defer func(begin time.Time) {
		var status int
		if info != nil {
			status = info.StatusCode
		}
		i.logger.InfoContext(ctx, "url info",
			"request_id", uuid.NewString(),
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Inspect(ctx, url)
}
