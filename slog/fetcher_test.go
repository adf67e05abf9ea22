package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/webmcp"
	"github.com/fwojciec/webmcp/mock"
	webmcpslog "github.com/fwojciec/webmcp/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs GET with status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageFetcher{
			FetchFn: func(_ context.Context, url string) (*webmcp.Page, error) {
				return &webmcp.Page{URL: url, StatusCode: 200, Body: "<html>content</html>"}, nil
			},
		}

		fetcher := webmcpslog.NewLoggingFetcher(inner, debugLogger(&buf))
		page, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.Body)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "method=GET")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs HEAD", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageFetcher{
			HeadFn: func(_ context.Context, url string) (*webmcp.Page, error) {
				return &webmcp.Page{URL: url, StatusCode: 301}, nil
			},
		}

		_, err := webmcpslog.NewLoggingFetcher(inner, debugLogger(&buf)).Head(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "method=HEAD")
		assert.Contains(t, buf.String(), "status=301")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageFetcher{
			FetchFn: func(context.Context, string) (*webmcp.Page, error) {
				return nil, errors.New("connection refused")
			},
		}

		_, err := webmcpslog.NewLoggingFetcher(inner, debugLogger(&buf)).Fetch(context.Background(), "https://example.com/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "status=0")
		assert.Contains(t, buf.String(), `err="connection refused"`)
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageFetcher{
			FetchFn: func(_ context.Context, url string) (*webmcp.Page, error) {
				return &webmcp.Page{URL: url, StatusCode: 200}, nil
			},
		}

		logger := slog.New(slog.NewTextHandler(&buf, nil))
		_, err := webmcpslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
