package redis

import (
	"context"
	"time"

	"bookstore-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RecommendationCache struct {
	rdb *redis.Client
}

func NewRecommendationCache(rdb *redis.Client) contract.RecommendationCache {
	return &RecommendationCache{rdb: rdb}
}

func (c *RecommendationCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		// redis.Nil and transport errors both degrade to a miss
		return "", false
	}
	return value, true
}

func (c *RecommendationCache) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	c.rdb.Set(ctx, key, value, ttl)
}
