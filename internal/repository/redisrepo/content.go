package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type contentEntry struct {
	Result   json.RawMessage `json:"result"`
	CachedAt time.Time       `json:"cachedAt"`
}

type contentRepo struct {
	def Default
}

func newContentRepo(def Default) Content {
	return &contentRepo{
		def: def,
	}
}

// GetRaw returns redis.Nil on a cache miss.
func (r *contentRepo) GetRaw(ctx context.Context, key string) ([]byte, error) {
	entry, err := Get[contentEntry](r.def, ctx, key)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, redis.Nil
	}
	return entry.Result, nil
}

func (r *contentRepo) SetRaw(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.def.SetJSON(ctx, key, contentEntry{
		Result:   value,
		CachedAt: time.Now().UTC(),
	}, ttl)
}

// Purge drops every cached content query and returns how many were removed.
func (r *contentRepo) Purge(ctx context.Context) (int64, error) {
	keys, err := r.def.Keys(ctx, CONTENT_KEY_PATTERN).Result()
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return r.def.Del(ctx, keys...).Result()
}
