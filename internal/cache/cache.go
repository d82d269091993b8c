package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gitpulse/server/internal/logger"
)

const keyStats = "gitpulse:stats:%s:%s" // start, end

// short-TTL Redis cache for leaderboard responses. The leaderboard query
// fans out over every contributor's rows, so the hot default window is
// worth memoizing; everything here is best-effort and a miss or Redis
// failure just falls through to Postgres.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// creates a stats cache backed by the Redis at redisURL
func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &StatsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// closes the Redis connection
func (c *StatsCache) Close() error {
	return c.client.Close()
}

// returns the cached serialized leaderboard for the range, if present
func (c *StatsCache) Get(ctx context.Context, start, end string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, fmt.Sprintf(keyStats, start, end)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, false
	}

	if err != nil {
		logger.Warn("stats cache read failed", "error", err)
		return nil, false
	}

	return payload, true
}

// stores the serialized leaderboard for the range
func (c *StatsCache) Set(ctx context.Context, start, end string, payload []byte) {
	key := fmt.Sprintf(keyStats, start, end)

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("stats cache write failed", "error", err)
	}
}

// drops the cached leaderboard for every range touching freshly
// ingested data. Called after an upsert so logins show up promptly.
func (c *StatsCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, fmt.Sprintf(keyStats, "*", "*"), 100).Iterator()

	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("stats cache invalidation failed", "key", iter.Val(), "error", err)
		}
	}

	if err := iter.Err(); err != nil {
		logger.Warn("stats cache scan failed", "error", err)
	}
}
