package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const searchResourcePrefix = "web://search/"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: searchResourcePrefix + "{query}",
		Name:        "search_resource",
		Description: "Provide search results as a resource",
		MIMEType:    "text/plain",
	}, handleSearchResource)
}

func handleSearchResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	query := strings.TrimPrefix(uri, searchResourcePrefix)
	if decoded, err := url.PathUnescape(query); err == nil {
		query = decoded
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     SearchResourceText(query),
		}},
	}, nil
}

// SearchResourceText returns the body of the web://search/{query} resource.
func SearchResourceText(query string) string {
	return fmt.Sprintf("Search results for: %s\n\nNote: Use the web_search tool for actual search functionality.", query)
}
