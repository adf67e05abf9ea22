package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const searchPromptTemplate = `
Please search for information about "%s" and provide a comprehensive analysis.

Use the web_search tool to gather current information, then:
1. Summarize the key findings
2. Identify important trends or developments
3. Provide relevant context and implications
4. Suggest additional areas for investigation

Focus on recent and authoritative sources to ensure accuracy.
`

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "search_prompt",
		Description: "Create a search and analysis prompt",
		Arguments: []*mcp.PromptArgument{
			{Name: "topic", Description: "Topic to search and analyze", Required: true},
		},
	}, handleSearchPrompt)
}

func handleSearchPrompt(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var topic string
	if req.Params != nil && req.Params.Arguments != nil {
		topic = req.Params.Arguments["topic"]
	}

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: SearchPromptText(topic)},
		}},
	}, nil
}

// SearchPromptText returns the analysis prompt for topic.
func SearchPromptText(topic string) string {
	return fmt.Sprintf(searchPromptTemplate, topic)
}
