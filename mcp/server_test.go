package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/webmcp"
	webmcpmcp "github.com/fwojciec/webmcp/mcp"
	"github.com/fwojciec/webmcp/mock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect starts server on an in-memory transport and returns a connected
// client session.
func connect(t *testing.T, server *webmcpmcp.Server) *mcp.ClientSession {
	t.Helper()

	ctx := context.Background()
	ct, st := mcp.NewInMemoryTransports()

	ss, err := server.MCPServer().Connect(ctx, st, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

// callTool invokes a tool and decodes its JSON text payload.
func callTool(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func TestServer_ListTools(t *testing.T) {
	t.Parallel()

	cs := connect(t, webmcpmcp.NewServer(&mock.Searcher{}, &mock.Inspector{}, "test"))

	res, err := cs.ListTools(context.Background(), nil)

	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"web_search", "url_info"}, names)
}

func TestServer_WebSearch(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults for omitted arguments", func(t *testing.T) {
		t.Parallel()

		var got webmcp.SearchQuery
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q webmcp.SearchQuery) (*webmcp.SearchResponse, error) {
				got = q
				return &webmcp.SearchResponse{Query: q.Query}, nil
			},
		}
		cs := connect(t, webmcpmcp.NewServer(searcher, &mock.Inspector{}, "test"))

		payload := callTool(t, cs, "web_search", map[string]any{"query": "golang"})

		assert.Equal(t, webmcp.SearchQuery{Query: "golang", Limit: 5, IncludeContent: true}, got)
		assert.Equal(t, "golang", payload["query"])
		assert.EqualValues(t, 0, payload["results_count"])
		assert.Equal(t, []any{}, payload["results"])
	})

	t.Run("passes explicit arguments and returns results", func(t *testing.T) {
		t.Parallel()

		var got webmcp.SearchQuery
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q webmcp.SearchQuery) (*webmcp.SearchResponse, error) {
				got = q
				return &webmcp.SearchResponse{
					Query:        q.Query,
					ResultsCount: 1,
					Results: []*webmcp.SearchResultItem{
						{Title: "Go", URL: "https://go.dev/", Snippet: "Build simple, secure, scalable systems"},
					},
				}, nil
			},
		}
		cs := connect(t, webmcpmcp.NewServer(searcher, &mock.Inspector{}, "test"))

		payload := callTool(t, cs, "web_search", map[string]any{"query": "golang", "limit": 2, "include_content": false})

		assert.Equal(t, webmcp.SearchQuery{Query: "golang", Limit: 2, IncludeContent: false}, got)
		results := payload["results"].([]any)
		require.Len(t, results, 1)
		first := results[0].(map[string]any)
		assert.Equal(t, "https://go.dev/", first["url"])
		assert.NotContains(t, first, "content")
	})

	t.Run("reports failures as an error payload", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, webmcp.SearchQuery) (*webmcp.SearchResponse, error) {
				return nil, webmcp.Errorf(webmcp.EUPSTREAM, "Search failed with status 503")
			},
		}
		cs := connect(t, webmcpmcp.NewServer(searcher, &mock.Inspector{}, "test"))

		payload := callTool(t, cs, "web_search", map[string]any{"query": "golang"})

		assert.Equal(t, map[string]any{"error": "Search failed with status 503"}, payload)
	})
}

func TestServer_URLInfo(t *testing.T) {
	t.Parallel()

	t.Run("returns URL metadata", func(t *testing.T) {
		t.Parallel()

		preview := "Example Domain"
		inspector := &mock.Inspector{
			InspectFn: func(_ context.Context, url string) (*webmcp.URLInfo, error) {
				return &webmcp.URLInfo{
					URL:            url,
					StatusCode:     200,
					ContentType:    "text/html",
					ContentLength:  webmcp.Unknown,
					Server:         "ECS",
					LastModified:   webmcp.Unknown,
					ContentPreview: &preview,
				}, nil
			},
		}
		cs := connect(t, webmcpmcp.NewServer(&mock.Searcher{}, inspector, "test"))

		payload := callTool(t, cs, "url_info", map[string]any{"url": "https://example.com/"})

		assert.Equal(t, "https://example.com/", payload["url"])
		assert.EqualValues(t, 200, payload["status_code"])
		assert.Equal(t, "Example Domain", payload["content_preview"])
		assert.NotContains(t, payload, "error")
	})

	t.Run("reports failures as an error payload", func(t *testing.T) {
		t.Parallel()

		inspector := &mock.Inspector{
			InspectFn: func(context.Context, string) (*webmcp.URLInfo, error) {
				return nil, webmcp.Errorf(webmcp.ENETWORK, "URL analysis failed: connection refused")
			},
		}
		cs := connect(t, webmcpmcp.NewServer(&mock.Searcher{}, inspector, "test"))

		payload := callTool(t, cs, "url_info", map[string]any{"url": "https://example.com/"})

		assert.Equal(t, map[string]any{"error": "URL analysis failed: connection refused"}, payload)
	})
}
