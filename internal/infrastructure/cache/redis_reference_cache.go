package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appcatalog "github.com/openbooks/backend/internal/application/catalog"
	"github.com/openbooks/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisReferenceCache implements the reference cache on Redis. It holds
// JSON snapshots of small, frequently read lists such as taxonomy groups
// and currencies.
type RedisReferenceCache struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client from configuration and verifies
// the connection
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewRedisReferenceCache creates a reference cache backed by an existing
// Redis client
func NewRedisReferenceCache(client *redis.Client) *RedisReferenceCache {
	return &RedisReferenceCache{client: client}
}

// GetJSON reads a cached value into dest. Returns false on a cache miss.
func (c *RedisReferenceCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores a value as JSON with a TTL
func (c *RedisReferenceCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Delete removes cache keys. Missing keys are not an error.
func (c *RedisReferenceCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}

// Ensure RedisReferenceCache implements ReferenceCache
var _ appcatalog.ReferenceCache = (*RedisReferenceCache)(nil)
