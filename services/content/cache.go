package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dharmachain/models"

	"github.com/go-redis/redis/v8"
)

const cacheKey = "about-content:main"

// ErrCacheMiss is returned by a Cache that holds no entry.
var ErrCacheMiss = errors.New("content cache miss")

// Cache holds the resolved About content between reads.
type Cache interface {
	Get(ctx context.Context) (*models.AboutContent, error)
	Set(ctx context.Context, c models.AboutContent) error
	Invalidate(ctx context.Context) error
}

// RedisCache stores the resolved content as JSON under a single key.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a cache backed by the given redis client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (*models.AboutContent, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", cacheKey, err)
	}
	var out models.AboutContent
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode cached content: %w", err)
	}
	return &out, nil
}

func (c *RedisCache) Set(ctx context.Context, content models.AboutContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, cacheKey).Err()
}
