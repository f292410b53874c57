package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/credo/internal/cache"
)

// Client wraps a Provider with an optional completion cache. Identical
// prompts against the same model are served from cache, which matters when a
// build is retried or a batch re-analyzes overlapping texts.
type Client struct {
	provider Provider
	cache    cache.Cache
	ttl      time.Duration
	verbose  bool
}

// NewClient creates a client around the given provider. A nil cache disables
// caching entirely.
func NewClient(provider Provider, c cache.Cache, ttl time.Duration, verbose bool) *Client {
	return &Client{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		verbose:  verbose,
	}
}

// Provider returns the wrapped provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// Complete runs one completion, consulting the cache first.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	key := cache.CompletionKey(req.Model, req.System, req.Prompt)

	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			var resp CompletionResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				if c.verbose {
					fmt.Fprintf(os.Stderr, "Completion cache hit (%s)\n", c.provider.Name())
				}
				return &resp, nil
			}
			// Corrupt entry, drop it and fall through to the provider
			_ = c.cache.Delete(key)
		}
	}

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = c.cache.Set(key, data, c.ttl)
		}
	}

	return resp, nil
}
