package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const cacheTTL = 5 * time.Minute

type redisContentCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisContentCache(rdb *redis.Client, log logger.Logger) service.ContentCache {
	return &redisContentCache{rdb: rdb, logger: log}
}

func (c *redisContentCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %q failed: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal %q failed: %w", key, err)
	}
	return true, nil
}

func (c *redisContentCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %q failed: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set %q failed: %w", key, err)
	}
	return nil
}

func (c *redisContentCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate failed: %w", err)
	}
	return nil
}
