// Package mcp exposes the webmcp services over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fwojciec/webmcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name announced to clients.
const ServerName = "WebMCP"

// Server registers the web search tools, resources and prompts on an MCP server.
type Server struct {
	mcpServer *mcp.Server
	searcher  webmcp.Searcher
	inspector webmcp.Inspector
}

// NewServer creates a Server announcing the given version.
func NewServer(searcher webmcp.Searcher, inspector webmcp.Inspector, version string) *Server {
	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
		searcher:  searcher,
		inspector: inspector,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

// Run serves a single session over t until the client disconnects or ctx
// is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	return s.mcpServer.Run(ctx, t)
}

// Handler returns an HTTP handler serving the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// toolResultJSON returns result as indented JSON text and as structured content.
func toolResultJSON(result any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to format result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, result, nil
}
