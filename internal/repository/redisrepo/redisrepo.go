package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Default interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
}

type Content interface {
	GetRaw(ctx context.Context, key string) ([]byte, error)
	SetRaw(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Purge(ctx context.Context) (int64, error)
}

type RateLimit interface {
	Increment(ctx context.Context, key string, windowStart time.Time) (int64, error)
}

type RedisRepository struct {
	Default
	Content
	RateLimit
}

// New wires the redis-backed repositories. rateLimitWindow sets how long a
// window counter is kept.
func New(rdb *redis.Client, rateLimitWindow time.Duration) *RedisRepository {
	def := newDefaultRepo(rdb)
	return &RedisRepository{
		Default:   def,
		Content:   newContentRepo(def),
		RateLimit: newRateLimitRepo(rdb, rateLimitWindow),
	}
}
