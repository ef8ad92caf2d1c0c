package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bellj/connect-api-examples/internal/square"
	"github.com/bellj/connect-api-examples/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisLocationCache caches location display data. Locations are read-only
// in the checkout flow, so TTL staleness is harmless.
type RedisLocationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLocationCache(rdb *redis.Client, ttl time.Duration) *RedisLocationCache {
	return &RedisLocationCache{rdb: rdb, ttl: ttl}
}

func key(locationID string) string { return "location:" + locationID }

func (c *RedisLocationCache) Get(ctx context.Context, locationID string) (*square.Location, bool, error) {
	raw, err := c.rdb.Get(ctx, key(locationID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var loc square.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, false, err
	}
	return &loc, true, nil
}

func (c *RedisLocationCache) Set(ctx context.Context, loc *square.Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(loc.ID), raw, c.ttl).Err()
}

var _ usecase.LocationCache = (*RedisLocationCache)(nil)
