package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/undivisible/perplexity-mcp-poke/pkg/search"
)

const (
	WebSearchName        = "web_search"
	WebSearchDescription = "Search using the Perplexity Search API with web search capability. Returns ranked search results with URLs, titles, snippets, and extracted content."
)

// Searcher runs a normalized web search. *search.Service implements it.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Response, error)
}

// NewWebSearch builds the web search tool on top of a Searcher.
func NewWebSearch(searcher Searcher) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        WebSearchName,
			Description: WebSearchDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Web Search", ReadOnlyHint: true},
			InputSchema: webSearchSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeWebSearch(ctx, searcher, args)
		},
	}
}

func executeWebSearch(ctx context.Context, searcher Searcher, args map[string]any) (*Result, error) {
	query, err := ReadString(args, "query", true)
	if err != nil {
		return ErrorResult(WebSearchName, err.Error()), nil
	}
	country, err := ReadString(args, "country", false)
	if err != nil {
		return ErrorResult(WebSearchName, err.Error()), nil
	}

	req := search.Request{
		Query:            query,
		MaxResults:       ReadIntOr(args, "max_results", search.DefaultMaxResults),
		MaxTokensPerPage: ReadIntOr(args, "max_tokens_per_page", search.DefaultMaxTokensPerPage),
		Country:          country,
		DomainFilter:     ReadStringSlice(args, "search_domain_filter"),
	}

	resp, err := searcher.Search(ctx, req)
	if err != nil {
		return JSONErrorResult(map[string]any{
			"status": "error",
			"query":  query,
			"error":  err.Error(),
		}, err.Error()), nil
	}

	return JSONResult(map[string]any{
		"status":        "success",
		"query":         resp.Query,
		"results":       resp.Results,
		"total_results": resp.TotalResults,
	}), nil
}

func webSearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query string",
			},
			"max_results": map[string]any{
				"type":        "integer",
				"description": "Number of results (1-20, default 5)",
			},
			"max_tokens_per_page": map[string]any{
				"type":        "integer",
				"description": "Content extraction limit per page (default 1024)",
			},
			"country": map[string]any{
				"type":        "string",
				"description": "ISO 3166-1 alpha-2 country code (e.g. \"US\", \"GB\")",
			},
			"search_domain_filter": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of domains to filter results (max 20)",
			},
		},
		"required": []string{"query"},
	}
}
