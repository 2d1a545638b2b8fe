package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/undivisible/perplexity-mcp-poke/pkg/extract"
	"github.com/undivisible/perplexity-mcp-poke/pkg/fetch"
)

const (
	FetchWebpageName        = "fetch_webpage"
	FetchWebpageDescription = "Fetch and extract main content from a webpage URL"

	// fetchContentChars caps content returned by the direct fetch tool. The
	// search enrichment path uses the tighter per-result cap instead.
	fetchContentChars = 5000
)

// PageFetcher retrieves a single webpage. *fetch.Client implements it.
type PageFetcher interface {
	Page(ctx context.Context, url string) (*fetch.Page, error)
}

// NewFetchWebpage builds the webpage fetch tool on top of a PageFetcher.
func NewFetchWebpage(pages PageFetcher) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        FetchWebpageName,
			Description: FetchWebpageDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Fetch Webpage", ReadOnlyHint: true},
			InputSchema: fetchWebpageSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeFetchWebpage(ctx, pages, args)
		},
	}
}

func executeFetchWebpage(ctx context.Context, pages PageFetcher, args map[string]any) (*Result, error) {
	url, err := ReadString(args, "url", true)
	if err != nil {
		return ErrorResult(FetchWebpageName, err.Error()), nil
	}

	page, err := pages.Page(ctx, url)
	if err != nil {
		return JSONErrorResult(map[string]any{
			"status": "error",
			"url":    url,
			"error":  err.Error(),
		}, err.Error()), nil
	}

	text, _ := extract.MainText(page.Body)
	md := extract.PageMetadata(page.Body)

	finalURL := page.FinalURL
	if finalURL == "" {
		finalURL = url
	}

	return JSONResult(map[string]any{
		"status":         "success",
		"url":            url,
		"final_url":      finalURL,
		"title":          md.Title,
		"content":        extract.Truncate(text, fetchContentChars),
		"content_length": len(text),
		"status_code":    page.StatusCode,
	}), nil
}

func fetchWebpageSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "URL of the webpage to fetch",
			},
		},
		"required": []string{"url"},
	}
}
