package search

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/undivisible/perplexity-mcp-poke/pkg/extract"
	"github.com/undivisible/perplexity-mcp-poke/pkg/fetch"
)

// PageFetcher retrieves a single webpage. *fetch.Client implements it.
type PageFetcher interface {
	Page(ctx context.Context, url string) (*fetch.Page, error)
}

// Service runs a search and enriches each result with extracted page
// content. Results are fetched one at a time; a failed page fetch is
// recorded on that result and never aborts the batch.
type Service struct {
	provider     Provider
	pages        PageFetcher
	contentChars int
	log          zerolog.Logger
}

// NewService wires a provider and a page fetcher into a search service.
func NewService(provider Provider, pages PageFetcher, log zerolog.Logger) *Service {
	return &Service{
		provider:     provider,
		pages:        pages,
		contentChars: DefaultContentChars,
		log:          log.With().Str("component", "search").Logger(),
	}
}

// Search normalizes req, queries the provider, and enriches the results. A
// provider failure aborts the whole operation.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	req = normalizeRequest(req)

	resp, err := s.provider.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	for i := range resp.Results {
		s.enrich(ctx, &resp.Results[i])
	}
	resp.TotalResults = len(resp.Results)
	return resp, nil
}

// enrich fetches the result URL and attaches capped extracted text. Results
// without a URL are left as not_attempted.
func (s *Service) enrich(ctx context.Context, result *Result) {
	if result.URL == "" {
		result.ContentStatus = ContentNotAttempted
		return
	}
	page, err := s.pages.Page(ctx, result.URL)
	if err != nil {
		result.ContentStatus = fmt.Sprintf("error: %s", err)
		s.log.Debug().Err(err).Str("url", result.URL).Msg("Page enrichment failed")
		return
	}
	text, selector := extract.MainText(page.Body)
	result.Content = extract.Truncate(text, s.contentChars)
	result.ContentStatus = ContentSuccess
	s.log.Debug().
		Str("url", result.URL).
		Str("selector", selector).
		Int("chars", len(result.Content)).
		Msg("Page enriched")
}

// normalizeRequest clamps the result count to [MinResults, MaxResults],
// applies the token default, and truncates the domain filter. The default
// result count is the caller's concern; an explicit zero still clamps up to
// MinResults.
func normalizeRequest(req Request) Request {
	if req.MaxResults < MinResults {
		req.MaxResults = MinResults
	}
	if req.MaxResults > MaxResults {
		req.MaxResults = MaxResults
	}
	if req.MaxTokensPerPage <= 0 {
		req.MaxTokensPerPage = DefaultMaxTokensPerPage
	}
	if len(req.DomainFilter) > MaxDomainFilter {
		req.DomainFilter = req.DomainFilter[:MaxDomainFilter]
	}
	return req
}
