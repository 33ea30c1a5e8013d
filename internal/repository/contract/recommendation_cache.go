package contract

import (
	"context"
	"time"
)

// RecommendationCache stores generated recommendation texts keyed by
// (mode, query identity, top_k). A hit short-circuits retrieval and
// generation; only successful generations are ever written.
type RecommendationCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}
