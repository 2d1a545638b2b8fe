package search

import "strings"

const (
	ProviderPerplexity = "perplexity"

	DefaultMaxResults       = 5
	MinResults              = 1
	MaxResults              = 20
	DefaultMaxTokensPerPage = 1024
	DefaultTimeoutSecs      = 30

	// MaxDomainFilter caps the search_domain_filter list accepted by the
	// Perplexity Search API.
	MaxDomainFilter = 20

	// DefaultContentChars caps extracted content attached to each search
	// result.
	DefaultContentChars = 2000
)

var DefaultFallbackOrder = []string{
	ProviderPerplexity,
}

// Config controls search provider selection and credentials.
type Config struct {
	Provider  string   `yaml:"provider"`
	Fallbacks []string `yaml:"fallbacks"`

	Perplexity PerplexityConfig `yaml:"perplexity"`
}

type PerplexityConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = ProviderPerplexity
	}
	if len(c.Fallbacks) == 0 {
		c.Fallbacks = append([]string{}, DefaultFallbackOrder...)
	}
	c.Perplexity = c.Perplexity.withDefaults()
	return c
}

func (c PerplexityConfig) withDefaults() PerplexityConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.perplexity.ai"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}
