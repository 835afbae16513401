package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type rateLimitRepo struct {
	rdb    *redis.Client
	window time.Duration
}

func newRateLimitRepo(rdb *redis.Client, window time.Duration) RateLimit {
	return &rateLimitRepo{
		rdb:    rdb,
		window: window,
	}
}

// Increment bumps the counter for key in the window starting at windowStart.
// The counter expires once the window is over, so no sweeping is needed.
func (r *rateLimitRepo) Increment(ctx context.Context, key string, windowStart time.Time) (int64, error) {
	redisKey := RateLimitKey(key, windowStart)

	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireAt(ctx, redisKey, windowStart.Add(r.window))
		return nil
	})
	if err != nil {
		return 0, err
	}

	return incr.Val(), nil
}
