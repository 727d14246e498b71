package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "ratelimit:"

// LimiterStore implements ratelimit.Store on Redis. Window state is a
// counter with a TTL, so stale clients expire natively and all instances
// see one consistent count.
type LimiterStore struct {
	client *redis.Client
}

// NewLimiterStore creates a Redis-backed limiter store.
func NewLimiterStore(client *redis.Client) *LimiterStore {
	return &LimiterStore{client: client}
}

// Incr increments the window counter for key, starting the TTL only on
// the increment that creates the key.
func (s *LimiterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := limiterKeyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("ratelimit incr %s: %w", key, err)
	}

	return incr.Val(), nil
}
