package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/pkg/utils"
)

// KeyPrefix namespaces every key the gateway writes.
const KeyPrefix = "namada-ping"

// DefaultTTL applies to entries stored without an explicit TTL.
const DefaultTTL = 30 * time.Second

// Client wraps the Redis client as a JSON response cache.
type Client struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewClient creates a new Redis client using environment variables for configuration.
// Environment variables:
//   - REDIS_HOST: Redis host (default: "localhost")
//   - REDIS_PORT: Redis port (default: "6379")
//   - REDIS_PASSWORD: Redis password (default: "")
//   - REDIS_DB: Redis database number (default: "0")
//   - CACHE_TTL: default entry lifetime (default: "30s")
func NewClient(ctx context.Context, logger *zap.Logger) (*Client, error) {
	host := utils.Env("REDIS_HOST", "localhost")
	port := utils.Env("REDIS_PORT", "6379")
	password := utils.Env("REDIS_PASSWORD", "")
	db := utils.EnvInt("REDIS_DB", 0)
	ttl := utils.EnvDuration("CACHE_TTL", DefaultTTL)

	addr := fmt.Sprintf("%s:%s", host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		// Connection pool
		PoolSize:     10,
		MinIdleConns: 2,

		// Timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	logger.Info("Connected to Redis",
		zap.String("addr", addr),
		zap.Int("db", db),
		zap.Duration("ttl", ttl))

	return New(rdb, logger, ttl), nil
}

// New wraps an existing go-redis client.
func New(rdb *redis.Client, logger *zap.Logger, ttl time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Client{client: rdb, logger: logger, ttl: ttl}
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Key joins parts under KeyPrefix: Key("validatorsets", "42") = "namada-ping:validatorsets:42".
func Key(parts ...string) string {
	return KeyPrefix + ":" + strings.Join(parts, ":")
}

// GetJSON decodes the entry at key into out. The boolean reports a hit.
func (c *Client) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores v at key. A zero ttl uses the client default; a negative ttl
// stores without expiry.
// This is best-effort - errors are logged but not returned so a cache outage
// never fails a request.
func (c *Client) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("Failed to encode Redis cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	switch {
	case ttl == 0:
		ttl = c.ttl
	case ttl < 0:
		ttl = 0
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Warn("Failed to write Redis cache entry", zap.String("key", key), zap.Error(err))
	}
}

// Health checks if Redis is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
