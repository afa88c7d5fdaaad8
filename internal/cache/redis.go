package cache

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/tinnkaaa/booking-system/config"
)

// RedisCache stores whole admin list pages as JSON under cache:list:<entity>.
type RedisCache struct {
	client  *redis.Client
	listTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listTTL: listTTL,
	}
}

// GetList decodes the cached list into dst. It reports false on a miss.
func (c *RedisCache) GetList(ctx context.Context, entity string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, ListKey(entity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetList(ctx context.Context, entity string, list any) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ListKey(entity), payload, c.listTTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, entities ...string) error {
	if len(entities) == 0 {
		return nil
	}
	keys := make([]string, 0, len(entities))
	for _, e := range entities {
		keys = append(keys, ListKey(e))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func ListKey(entity string) string {
	return "cache:list:" + entity
}
