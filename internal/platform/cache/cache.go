// Package cache provides the read-through cache used by the domain services.
//
// Each entity collection is cached under a stable collection key. Mutations
// never patch cached values in place: a successful create, update, or delete
// invalidates the collection key (and every scoped variant sharing its
// prefix) so the next read loads fresh data from the repository. Concurrent
// loads for the same key are deliberately not coalesced: whichever load
// finishes last writes the cache, so the freshest fetch wins.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Cache wraps a Store with JSON encoding and read-through loading.
type Cache struct {
	store  Store
	ttl    time.Duration
	logger zerolog.Logger
}

// New creates a Cache over the given backend. A zero ttl means cached
// entries never expire and live until invalidated.
func New(store Store, ttl time.Duration, logger zerolog.Logger) *Cache {
	return &Cache{store: store, ttl: ttl, logger: logger}
}

// GetOrLoad returns the cached value for key, unmarshalled into dest. On a
// miss it calls load, caches the result, and fills dest from it. The boolean
// reports whether the value came from the cache.
//
// Backend failures degrade to a direct load, and a failed cache write never
// fails the read: the caller always gets data if the loader succeeds.
func (c *Cache) GetOrLoad(ctx context.Context, key string, dest interface{}, load func(ctx context.Context) (interface{}, error)) (bool, error) {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, loading directly")
	} else if ok {
		if err := json.Unmarshal(data, dest); err == nil {
			return true, nil
		}
		// Corrupt entry: drop it and reload.
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to drop corrupt cache entry")
		}
	}

	v, err := load(ctx)
	if err != nil {
		return false, err
	}

	data, err = json.Marshal(v)
	if err != nil {
		return false, err
	}

	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return false, json.Unmarshal(data, dest)
}

// Invalidate drops the entry for key along with every scoped variant that
// shares the key as a prefix. Called by services after successful mutations.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.store.DeletePrefix(ctx, key); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}
