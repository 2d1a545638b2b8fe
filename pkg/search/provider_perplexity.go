package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/undivisible/perplexity-mcp-poke/pkg/shared/httputil"
)

type perplexityProvider struct {
	cfg PerplexityConfig
}

func newPerplexityProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.Perplexity.Enabled, true) {
		return nil
	}
	if strings.TrimSpace(cfg.Perplexity.APIKey) == "" {
		return nil
	}
	return &perplexityProvider{cfg: cfg.Perplexity}
}

func (p *perplexityProvider) Name() string {
	return ProviderPerplexity
}

func (p *perplexityProvider) Search(ctx context.Context, req Request) (*Response, error) {
	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/search"
	payload := map[string]any{
		"query":               req.Query,
		"max_results":         req.MaxResults,
		"max_tokens_per_page": req.MaxTokensPerPage,
	}
	if req.Country != "" {
		payload["country"] = req.Country
	}
	if len(req.DomainFilter) > 0 {
		payload["search_domain_filter"] = req.DomainFilter
	}

	start := time.Now()
	data, _, err := httputil.PostJSON(ctx, endpoint, map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", p.cfg.APIKey),
	}, payload, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Snippet string `json:"snippet"`
			Date    string `json:"date"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := make([]Result, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, Result{
			Title:         strings.TrimSpace(r.Title),
			URL:           strings.TrimSpace(r.URL),
			Snippet:       strings.TrimSpace(r.Snippet),
			Date:          r.Date,
			ContentStatus: ContentNotAttempted,
		})
	}

	return &Response{
		Query:        req.Query,
		Provider:     ProviderPerplexity,
		TookMs:       time.Since(start).Milliseconds(),
		Results:      results,
		TotalResults: len(results),
	}, nil
}
