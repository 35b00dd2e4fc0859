package cache

import (
	"context"
	"strings"
	"time"
)

// Store defines the interface for a cache backend. Values are opaque byte
// slices; encoding is the caller's concern.
type Store interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a single entry.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every entry whose key starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// Key joins key segments with ":" to form a cache key. Scoped variants of a
// collection key (e.g. per-owner listings) share the collection prefix so a
// prefix invalidation drops them all.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
