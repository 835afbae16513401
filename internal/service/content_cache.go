package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedStore keeps raw query results in redis. Cache failures degrade to a
// direct store read.
type cachedStore struct {
	logger *zap.Logger
	cache  redisrepo.Content
	store  content.Store
	ttl    time.Duration
}

func newCachedStore(logger *zap.Logger, cache redisrepo.Content, store content.Store, ttl time.Duration) content.Store {
	return &cachedStore{
		logger: logger,
		cache:  cache,
		store:  store,
		ttl:    ttl,
	}
}

func (s *cachedStore) Fetch(ctx context.Context, q content.Query) (json.RawMessage, error) {
	key := redisrepo.ContentKey(q.Name, q.Params)

	cached, err := s.cache.GetRaw(ctx, key)
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get %s from redis: %s", key, err.Error())
	}

	raw, err := s.store.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetRaw(ctx, key, raw, s.ttl); err != nil {
		s.logger.Sugar().Errorf("failed to set %s in redis: %s", key, err.Error())
	}

	return raw, nil
}
