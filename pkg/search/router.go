package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// NewProviderChain resolves the configured provider order into a single
// Provider that tries each backend until one succeeds. It returns an error
// when no provider is usable, typically because no API key is configured.
func NewProviderChain(cfg *Config) (Provider, error) {
	cfg = cfg.WithDefaults()

	providers := make(map[string]Provider)
	if p := newPerplexityProvider(cfg); p != nil {
		providers[p.Name()] = p
	}

	order := buildOrder(cfg)
	available := make([]string, 0, len(order))
	for _, name := range order {
		if providers[name] != nil {
			available = append(available, name)
		}
	}
	if len(available) == 0 {
		return nil, errors.New("no search providers available (missing api key?)")
	}
	return &providerChain{order: available, providers: providers}, nil
}

// providerChain tries providers in order until one returns a response.
type providerChain struct {
	order     []string
	providers map[string]Provider
}

func (c *providerChain) Name() string {
	return strings.Join(c.order, ",")
}

func (c *providerChain) Search(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for _, name := range c.order {
		provider := c.providers[name]
		if provider == nil {
			continue
		}
		resp, err := provider.Search(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp == nil {
			lastErr = fmt.Errorf("provider %s returned empty response", name)
			continue
		}
		if resp.Provider == "" {
			resp.Provider = name
		}
		if resp.Query == "" {
			resp.Query = req.Query
		}
		return resp, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.New("no search providers available")
}

func buildOrder(cfg *Config) []string {
	order := make([]string, 0, len(cfg.Fallbacks)+1)
	provider := strings.TrimSpace(cfg.Provider)
	if provider != "" && provider != "auto" {
		order = append(order, provider)
	}
	order = append(order, cfg.Fallbacks...)
	return dedupeOrder(order)
}

func dedupeOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
