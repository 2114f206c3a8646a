package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the Redis instance backing the stats cache.
type Config struct {
	Addr     string
	DB       int
	StatsTTL time.Duration
	Timeout  time.Duration
}

// Connect initialises the Redis client backing the stats cache, validates
// connectivity with a ping, and returns the cache ready for use.
func Connect(ctx context.Context, cfg Config) (*StatsCache, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewStatsCache(client, cfg.StatsTTL), nil
}
