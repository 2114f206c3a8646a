package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/priyanaka6261/property-portal-backend/internal/api/metrics"
	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
)

const (
	statsKey        = "stats:properties_by_status"
	defaultStatsTTL = 30 * time.Second
)

// StatsCache fronts the property status-count aggregation with a short-lived
// Redis entry so dashboard polling does not hammer storage.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
// If ttl <= 0, defaultStatsTTL is used.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Client exposes the underlying connection for readiness probes.
func (c *StatsCache) Client() *redis.Client { return c.client }

// Close releases the underlying connection.
func (c *StatsCache) Close() error { return c.client.Close() }

// Get returns the cached counts, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (map[domain.PropertyStatus]int64, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var counts map[domain.PropertyStatus]int64
	if err := json.Unmarshal(raw, &counts); err != nil {
		// A corrupt entry reads as a miss; the next Set overwrites it.
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return counts, nil
}

// Set stores the counts, expiring after the configured TTL.
func (c *StatsCache) Set(ctx context.Context, counts map[domain.PropertyStatus]int64) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("stats cache marshal: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
