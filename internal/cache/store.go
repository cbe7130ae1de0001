package cache

import (
	"context"
	"time"
)

// Store adapts the package-level Redis helpers to the read/write capability
// the feed service accepts, so tests can substitute an in-memory stand-in.
type Store struct{}

// NewStore returns a Store backed by the package Redis client.
func NewStore() *Store {
	return &Store{}
}

// Get reads a JSON value into dest, reporting whether the key existed.
func (Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	return GetJSON(ctx, key, dest)
}

// Set stores v as JSON under key with the given lifetime.
func (Store) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	return SetJSON(ctx, key, v, ttl)
}

// Invalidate drops key from the cache.
func (Store) Invalidate(ctx context.Context, key string) {
	Invalidate(ctx, key)
}
