package mcp

import (
	"context"

	"github.com/fwojciec/webmcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WebSearchInput is the input of the web_search tool.
type WebSearchInput struct {
	Query          string `json:"query" jsonschema:"Search query string"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"Maximum number of results to return (default 5)"`
	IncludeContent *bool  `json:"include_content,omitempty" jsonschema:"Whether to include page content in results (default true)"`
}

// URLInfoInput is the input of the url_info tool.
type URLInfoInput struct {
	URL string `json:"url" jsonschema:"URL to analyze"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "web_search",
		Description: "Search the web for information using DuckDuckGo. Returns titles, URLs and snippets, optionally with the text content of each result page.",
	}, s.handleWebSearch)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "url_info",
		Description: "Get information about a specific URL: final address after redirects, status, response headers and, for HTML pages, a short content preview.",
	}, s.handleURLInfo)
}

func (s *Server) handleWebSearch(ctx context.Context, _ *mcp.CallToolRequest, in WebSearchInput) (*mcp.CallToolResult, any, error) {
	q := webmcp.SearchQuery{
		Query:          in.Query,
		Limit:          webmcp.DefaultSearchLimit,
		IncludeContent: true,
	}
	if in.Limit != nil {
		q.Limit = *in.Limit
	}
	if in.IncludeContent != nil {
		q.IncludeContent = *in.IncludeContent
	}

	resp, err := s.searcher.Search(ctx, q)
	if err != nil {
		resp = webmcp.NewSearchError(err)
	}
	return toolResultJSON(resp)
}

func (s *Server) handleURLInfo(ctx context.Context, _ *mcp.CallToolRequest, in URLInfoInput) (*mcp.CallToolResult, any, error) {
	info, err := s.inspector.Inspect(ctx, in.URL)
	if err != nil {
		info = webmcp.NewURLInfoError(err)
	}
	return toolResultJSON(info)
}
