package search

import (
	"os"
	"strings"
)

// ConfigFromEnv builds a search config using environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}

	if provider := strings.TrimSpace(os.Getenv("SEARCH_PROVIDER")); provider != "" {
		cfg.Provider = provider
	}
	if fallbacks := strings.TrimSpace(os.Getenv("SEARCH_FALLBACKS")); fallbacks != "" {
		cfg.Fallbacks = splitCSV(fallbacks)
	}
	cfg.Perplexity.APIKey = envOr(cfg.Perplexity.APIKey, os.Getenv("PERPLEXITY_API_KEY"))
	cfg.Perplexity.BaseURL = envOr(cfg.Perplexity.BaseURL, os.Getenv("PERPLEXITY_BASE_URL"))

	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
// Explicit config values take precedence over env.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()

	if strings.TrimSpace(current.Provider) == "" {
		current.Provider = envCfg.Provider
	}
	if len(current.Fallbacks) == 0 {
		current.Fallbacks = envCfg.Fallbacks
	}
	if current.Perplexity.APIKey == "" {
		current.Perplexity.APIKey = envCfg.Perplexity.APIKey
	}
	if current.Perplexity.BaseURL == "" {
		current.Perplexity.BaseURL = envCfg.Perplexity.BaseURL
	}
	return current
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	var out []string
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
