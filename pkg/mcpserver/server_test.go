package mcpserver

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/undivisible/perplexity-mcp-poke/pkg/tools"
)

func echoTool() *tools.Tool {
	return &tools.Tool{
		Tool: mcp.Tool{
			Name:        "echo",
			Description: "Echo the text argument back",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string"},
				},
			},
		},
		Execute: func(_ context.Context, args map[string]any) (*tools.Result, error) {
			text, _ := tools.ReadString(args, "text", false)
			return tools.JSONResult(map[string]any{"status": "success", "echo": text}), nil
		},
	}
}

func TestToCallToolResult(t *testing.T) {
	ok := tools.JSONResult(map[string]any{"status": "success"})
	converted := toCallToolResult(ok)
	if converted.IsError {
		t.Fatalf("success result must not set IsError")
	}
	if len(converted.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(converted.Content))
	}
	text, isText := converted.Content[0].(*mcp.TextContent)
	if !isText || text.Text == "" {
		t.Fatalf("expected text content, got %#v", converted.Content[0])
	}

	failed := tools.ErrorResult("web_search", "boom")
	converted = toCallToolResult(failed)
	if !converted.IsError {
		t.Fatalf("error result must set IsError")
	}
}

func TestStreamableHTTPRoundTrip(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(echoTool())
	server := New(Config{Transport: TransportHTTP}, registry, zerolog.Nop())

	handler, err := server.transportHandler()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ts := httptest.NewServer(handler)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL}, nil)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"text": "ping"},
	})
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	text, isText := result.Content[0].(*mcp.TextContent)
	if !isText || !strings.Contains(text.Text, "ping") {
		t.Fatalf("echo not round-tripped: %#v", result.Content[0])
	}
}

func TestRunHTTPShutsDownOnCancel(t *testing.T) {
	server := New(Config{Transport: TransportHTTP, Addr: "127.0.0.1:0"}, tools.NewRegistry(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx)
	}()
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("shutdown must be clean, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	server := New(Config{Transport: "carrier-pigeon"}, tools.NewRegistry(), zerolog.Nop())
	if err := server.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown transport")
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.Transport != TransportStdio {
		t.Fatalf("unexpected default transport: %q", cfg.Transport)
	}
	if cfg.Addr != DefaultAddr {
		t.Fatalf("unexpected default addr: %q", cfg.Addr)
	}

	cfg = Config{Transport: TransportSSE, Addr: ":9000"}.WithDefaults()
	if cfg.Transport != TransportSSE || cfg.Addr != ":9000" {
		t.Fatalf("explicit values must be kept: %+v", cfg)
	}
}
