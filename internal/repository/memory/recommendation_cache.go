package memory

import (
	"context"
	"time"

	"bookstore-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type RecommendationCache struct {
	cache *cache.Cache
}

func NewRecommendationCache() contract.RecommendationCache {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &RecommendationCache{
		cache: c,
	}
}

func (c *RecommendationCache) Get(_ context.Context, key string) (string, bool) {
	if x, found := c.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (c *RecommendationCache) Set(_ context.Context, key string, value string, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}
