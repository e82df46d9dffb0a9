package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/timekeeper/inventory-system/internal/core/ports"
)

const (
	statsKey = "dashboard:stats"

	// DefaultStatsTTL bounds dashboard staleness when no TTL is configured.
	DefaultStatsTTL = 30 * time.Second
)

// StatsCache caches the aggregated dashboard payload in Redis. The short TTL
// bounds staleness; a miss is reported as (nil, nil) so callers recompute.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
// A non-positive ttl falls back to DefaultStatsTTL.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached dashboard payload, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.DashboardStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the dashboard payload with the cache TTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
