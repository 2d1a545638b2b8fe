package tools

import (
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewWebSearch(&fakeSearcher{}))
	registry.Register(NewFetchWebpage(&fakePages{}))

	if registry.Get(WebSearchName) == nil {
		t.Fatalf("web search tool not registered")
	}
	if registry.Get(FetchWebpageName) == nil {
		t.Fatalf("fetch tool not registered")
	}
	if registry.Get("nope") != nil {
		t.Fatalf("unknown tool must be nil")
	}

	all := registry.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(all))
	}
	// Sorted by name: fetch_webpage before web_search.
	if all[0].Name != FetchWebpageName || all[1].Name != WebSearchName {
		t.Fatalf("tools not sorted: %s, %s", all[0].Name, all[1].Name)
	}
}
