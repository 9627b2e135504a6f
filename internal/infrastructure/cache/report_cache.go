package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// RedisReportCache implements shared.ReportCache using Redis. Report
// payloads are small JSON blobs, so plain string keys with a TTL are enough.
type RedisReportCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisReportCache creates a Redis-backed report cache
func NewRedisReportCache(cfg RedisConfig) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{
		client:    client,
		keyPrefix: "report:",
	}, nil
}

// NewRedisReportCacheWithClient creates a cache over an existing client.
// Useful for tests and for sharing a client across components.
func NewRedisReportCacheWithClient(client *redis.Client, keyPrefix string) *RedisReportCache {
	if keyPrefix == "" {
		keyPrefix = "report:"
	}
	return &RedisReportCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get fetches a cached payload; the boolean is false on a miss
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}
	return value, true, nil
}

// Set stores a payload with the given TTL
func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Invalidate removes the given keys
func (c *RedisReportCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.keyPrefix + key
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached reports: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

// Ensure RedisReportCache implements ReportCache
var _ shared.ReportCache = (*RedisReportCache)(nil)

// NoopReportCache is used when no Redis address is configured; every read
// is a miss and writes are discarded.
type NoopReportCache struct{}

// NewNoopReportCache creates a NoopReportCache
func NewNoopReportCache() *NoopReportCache {
	return &NoopReportCache{}
}

// Get always misses
func (NoopReportCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the payload
func (NoopReportCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Invalidate does nothing
func (NoopReportCache) Invalidate(context.Context, ...string) error {
	return nil
}

// Ensure NoopReportCache implements ReportCache
var _ shared.ReportCache = (*NoopReportCache)(nil)
