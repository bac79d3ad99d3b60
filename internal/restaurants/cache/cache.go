// Package cache provides an optional redis-backed cache for the distinct
// borough and cuisine lists. Search criteria and results are never cached;
// the metadata lists change only when the dataset is reloaded.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant_inspections_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Metadata caches string lists under a TTL.
type Metadata struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

// NewMetadata creates a metadata cache from a redis URL.
// Returns nil if the URL is empty (caching not configured).
func NewMetadata(redisURL string, ttl time.Duration, log *logger.Logger) (*Metadata, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Metadata{rdb: client, ttl: ttl, log: log}, nil
}

// Get returns the cached list for key, or false on a miss. Cache failures
// degrade to a miss; the store query still answers the request.
func (c *Metadata) Get(ctx context.Context, key string) ([]string, bool) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("metadata cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var values []string
	if err := json.Unmarshal(payload, &values); err != nil {
		c.log.Warn("metadata cache entry corrupt", "key", key, "error", err.Error())
		return nil, false
	}
	return values, true
}

// Set stores the list for key under the configured TTL, best effort.
func (c *Metadata) Set(ctx context.Context, key string, values []string) {
	payload, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("metadata cache write failed", "key", key, "error", err.Error())
	}
}

// Close releases the redis connection.
func (c *Metadata) Close() error {
	return c.rdb.Close()
}
