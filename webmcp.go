// Package webmcp provides web search and URL inspection tools for AI agents.
// Search results are scraped from DuckDuckGo's HTML endpoint. Each linked
// page can be fetched for a bounded plain-text preview of its main content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, mcp/).
package webmcp

import "time"

// Defaults shared by the implementations.
const (
	// DefaultTimeout bounds every outbound HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is presented to the search engine and to result pages.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultSearchEndpoint is the HTML results endpoint of the search provider.
	DefaultSearchEndpoint = "https://html.duckduckgo.com/html/"

	// DefaultRegion is sent as the kl query parameter.
	DefaultRegion = "us-en"
)
