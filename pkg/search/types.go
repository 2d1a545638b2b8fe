// Package search issues web searches and enriches each hit with extracted
// page content.
package search

// Content extraction statuses recorded per result. Fetch failures are
// formatted as "error: <message>" so one bad URL never aborts the batch.
const (
	ContentNotAttempted = "not_attempted"
	ContentSuccess      = "success"
)

// Request represents a normalized web search request.
type Request struct {
	Query            string
	MaxResults       int
	MaxTokensPerPage int
	Country          string
	DomainFilter     []string
}

// Result is a normalized search result, optionally enriched with extracted
// page content.
type Result struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet,omitempty"`
	Date          string `json:"date,omitempty"`
	Content       string `json:"content,omitempty"`
	ContentStatus string `json:"content_extraction_status"`
}

// Response is a normalized search response.
type Response struct {
	Query        string   `json:"query"`
	Provider     string   `json:"provider,omitempty"`
	TookMs       int64    `json:"took_ms,omitempty"`
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
}
