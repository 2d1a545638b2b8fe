package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/undivisible/perplexity-mcp-poke/pkg/fetch"
)

type fakePages struct {
	page *fetch.Page
	err  error
}

func (f *fakePages) Page(context.Context, string) (*fetch.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func TestFetchWebpageSuccessEnvelope(t *testing.T) {
	body := `<html><head><title>Example Домен</title></head><body>
	<script>var tracked = true;</script>
	<main>Example main content.</main></body></html>`
	pages := &fakePages{page: &fetch.Page{
		URL:        "https://example.com",
		FinalURL:   "https://example.com/landing",
		StatusCode: 200,
		Body:       body,
	}}
	tool := NewFetchWebpage(pages)

	result, err := tool.Execute(context.Background(), map[string]any{"url": "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError() {
		t.Fatalf("unexpected error result: %+v", result)
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(result.Text()), &envelope); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	if envelope["status"] != "success" || envelope["url"] != "https://example.com" {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
	if int(envelope["status_code"].(float64)) != 200 {
		t.Fatalf("status_code missing: %v", envelope)
	}
	if envelope["final_url"] != "https://example.com/landing" {
		t.Fatalf("final_url missing: %v", envelope["final_url"])
	}
	content := envelope["content"].(string)
	if content != "Example main content." {
		t.Fatalf("unexpected content: %q", content)
	}
	if strings.Contains(content, "tracked") {
		t.Fatalf("script text leaked: %q", content)
	}
	if envelope["title"] != "Example Домен" {
		t.Fatalf("title missing: %v", envelope["title"])
	}
}

func TestFetchWebpageCapsContent(t *testing.T) {
	long := strings.Repeat("paragraph text ", 1000)
	pages := &fakePages{page: &fetch.Page{StatusCode: 200, Body: "<html><body><article>" + long + "</article></body></html>"}}
	tool := NewFetchWebpage(pages)

	result, err := tool.Execute(context.Background(), map[string]any{"url": "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var envelope map[string]any
	if err := json.Unmarshal([]byte(result.Text()), &envelope); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	content := envelope["content"].(string)
	if len(content) > fetchContentChars {
		t.Fatalf("content exceeds cap: %d", len(content))
	}
	// content_length reports the pre-cap extracted length.
	if int(envelope["content_length"].(float64)) <= fetchContentChars {
		t.Fatalf("content_length must report the uncapped length: %v", envelope["content_length"])
	}
}

func TestFetchWebpageErrorEnvelope(t *testing.T) {
	tool := NewFetchWebpage(&fakePages{err: errors.New("connection refused")})
	result, err := tool.Execute(context.Background(), map[string]any{"url": "https://down.example.com"})
	if err != nil {
		t.Fatalf("fetch errors must be envelopes, not Go errors: %v", err)
	}
	if !result.IsError() {
		t.Fatalf("expected error result")
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(result.Text()), &envelope); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	if envelope["status"] != "error" || envelope["url"] != "https://down.example.com" {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
	if envelope["error"] != "connection refused" {
		t.Fatalf("error message missing: %v", envelope)
	}
}

func TestFetchWebpageRequiresURL(t *testing.T) {
	tool := NewFetchWebpage(&fakePages{})
	result, err := tool.Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError() {
		t.Fatalf("missing url must produce an error result")
	}
}
