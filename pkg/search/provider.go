package search

import "context"

// Provider performs web searches against one backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, req Request) (*Response, error)
}
