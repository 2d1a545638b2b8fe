// Package config assembles the runtime configuration for the server. Values
// resolve in order: explicit config file, then environment, then defaults.
// Nothing reads the environment after startup; constructed Config values are
// passed into components so tests never mutate process state.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/undivisible/perplexity-mcp-poke/pkg/fetch"
	"github.com/undivisible/perplexity-mcp-poke/pkg/mcpserver"
	"github.com/undivisible/perplexity-mcp-poke/pkg/search"
)

// Config is the root configuration object.
type Config struct {
	Search search.Config    `yaml:"search"`
	Fetch  fetch.Config     `yaml:"fetch"`
	Server mcpserver.Config `yaml:"server"`
}

// WithDefaults fills unset fields on every section.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.Search = *(&c.Search).WithDefaults()
	c.Fetch = c.Fetch.WithDefaults()
	c.Server = c.Server.WithDefaults()
	return c
}

// Load reads an optional YAML config file and layers environment defaults
// underneath it. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	return ApplyEnvDefaults(cfg), nil
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.Search = *search.ApplyEnvDefaults(&cfg.Search)

	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = strings.TrimSpace(os.Getenv("FETCH_USER_AGENT"))
	}

	if strings.TrimSpace(cfg.Server.Transport) == "" {
		cfg.Server.Transport = strings.TrimSpace(os.Getenv("MCP_TRANSPORT"))
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cfg.Server.Addr = ":" + port
		}
	}

	return cfg.WithDefaults()
}
