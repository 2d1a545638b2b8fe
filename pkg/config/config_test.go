package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/undivisible/perplexity-mcp-poke/pkg/mcpserver"
	"github.com/undivisible/perplexity-mcp-poke/pkg/search"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "env-key")
	t.Setenv("MCP_TRANSPORT", "sse")
	t.Setenv("PORT", "9100")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.Perplexity.APIKey != "env-key" {
		t.Fatalf("api key not read from env: %q", cfg.Search.Perplexity.APIKey)
	}
	if cfg.Server.Transport != mcpserver.TransportSSE {
		t.Fatalf("transport not read from env: %q", cfg.Server.Transport)
	}
	if cfg.Server.Addr != ":9100" {
		t.Fatalf("addr not derived from PORT: %q", cfg.Server.Addr)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Transport != mcpserver.TransportStdio {
		t.Fatalf("unexpected default transport: %q", cfg.Server.Transport)
	}
	if cfg.Search.Provider != search.ProviderPerplexity {
		t.Fatalf("unexpected default provider: %q", cfg.Search.Provider)
	}
	if cfg.Search.Perplexity.BaseURL != "https://api.perplexity.ai" {
		t.Fatalf("unexpected default base url: %q", cfg.Search.Perplexity.BaseURL)
	}
	if cfg.Fetch.TimeoutSecs <= 0 {
		t.Fatalf("fetch defaults not applied: %+v", cfg.Fetch)
	}
}

func TestLoadFileBeatsEnv(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("search:\n  perplexity:\n    api_key: file-key\nserver:\n  transport: http\n  addr: \":7000\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.Perplexity.APIKey != "file-key" {
		t.Fatalf("file value must win over env: %q", cfg.Search.Perplexity.APIKey)
	}
	if cfg.Server.Transport != mcpserver.TransportHTTP || cfg.Server.Addr != ":7000" {
		t.Fatalf("server section not parsed: %+v", cfg.Server)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
