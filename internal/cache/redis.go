package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dverbeek/cinebook/config"
	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

func (c *RedisCache) GetCatalog(ctx context.Context) (map[string]domain.Movie, error) {
	data, err := c.client.Get(ctx, catalogKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var movies map[string]domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *RedisCache) SetCatalog(ctx context.Context, movies map[string]domain.Movie) error {
	payload, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey(), payload, c.catalogTTL).Err()
}

func (c *RedisCache) InvalidateCatalog(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey()).Err()
}

// AcquireUserLock serializes booking writes per user. Callers that fail to
// acquire must retry or give up; the ledger unique constraint is the backstop.
func (c *RedisCache) AcquireUserLock(ctx context.Context, userID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, userLockKey(userID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseUserLock(ctx context.Context, userID string) error {
	return c.client.Del(ctx, userLockKey(userID)).Err()
}

func catalogKey() string {
	return "cache:catalog"
}

func userLockKey(userID string) string {
	return fmt.Sprintf("lock:bookings:user:%s", userID)
}
