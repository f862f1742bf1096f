package schedulingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache реализация Cache на Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache создает кеш поверх готового клиента Redis
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get получает значение по ключу
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrCache, key, err)
	}
	return data, true, nil
}

// Set сохраняет значение с TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, key, err)
	}
	return nil
}
