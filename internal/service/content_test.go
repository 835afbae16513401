package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/CortexBlog/blog-service/internal/content"
	"github.com/CortexBlog/blog-service/internal/repository"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (*repository.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return repository.New(nil, rdb, time.Minute), mr
}

func countingStore(calls *int, result string) content.Store {
	return content.StoreFunc(func(_ context.Context, _ content.Query) (json.RawMessage, error) {
		*calls++
		return json.RawMessage(result), nil
	})
}

func TestContentServiceMapsErrors(t *testing.T) {
	failing := content.StoreFunc(func(context.Context, content.Query) (json.RawMessage, error) {
		return nil, errors.New("dial tcp: connection refused")
	})
	svc := New(zap.NewNop(), nil, Deps{ContentStore: failing})

	_, err := svc.Content.LatestPosts(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Content.Posts(context.Background(), 8, 0, "")
	assert.ErrorIs(t, err, content.ErrInvalidRange)

	empty := content.StoreFunc(func(context.Context, content.Query) (json.RawMessage, error) {
		return json.RawMessage("null"), nil
	})
	svc = New(zap.NewNop(), nil, Deps{ContentStore: empty})

	_, err = svc.Content.Post(context.Background(), "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestNewWithoutContentStore(t *testing.T) {
	svc := New(zap.NewNop(), nil, Deps{})
	assert.Nil(t, svc.Content)
	assert.NotNil(t, svc.Contact)
	assert.NotNil(t, svc.Newsletter)
}

func TestCachedStoreServesRepeatQueriesFromRedis(t *testing.T) {
	repo, mr := newTestRepo(t)

	calls := 0
	svc := New(zap.NewNop(), repo, Deps{
		ContentStore: countingStore(&calls, `[{"title":"A"}]`),
		CacheTTL:     time.Minute,
	})

	for i := 0; i < 3; i++ {
		posts, err := svc.Content.LatestPosts(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "A", posts[0].Title)
	}
	assert.Equal(t, 1, calls)

	mr.FastForward(2 * time.Minute)

	_, err := svc.Content.LatestPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCachedStoreKeysByParams(t *testing.T) {
	repo, _ := newTestRepo(t)

	calls := 0
	svc := New(zap.NewNop(), repo, Deps{
		ContentStore: countingStore(&calls, `[]`),
		CacheTTL:     time.Minute,
	})

	_, err := svc.Content.Posts(context.Background(), 0, 8, "")
	require.NoError(t, err)
	_, err = svc.Content.Posts(context.Background(), 8, 16, "")
	require.NoError(t, err)
	_, err = svc.Content.Posts(context.Background(), 0, 8, "")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestCachedStoreFallsBackWhenRedisDown(t *testing.T) {
	repo, mr := newTestRepo(t)
	mr.Close()

	calls := 0
	svc := New(zap.NewNop(), repo, Deps{
		ContentStore: countingStore(&calls, `42`),
		CacheTTL:     time.Minute,
	})

	count, err := svc.Content.PostCount(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Equal(t, 1, calls)
}

func TestRevalidationPurge(t *testing.T) {
	repo, mr := newTestRepo(t)

	calls := 0
	svc := New(zap.NewNop(), repo, Deps{
		ContentStore: countingStore(&calls, `[]`),
		CacheTTL:     time.Minute,
	})

	_, err := svc.Content.LatestPosts(context.Background())
	require.NoError(t, err)
	_, err = svc.Content.Categories(context.Background())
	require.NoError(t, err)
	require.NoError(t, mr.Set("ratelimit:1.2.3.4:0", "1"))

	purged, err := svc.Revalidation.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)
	assert.True(t, mr.Exists("ratelimit:1.2.3.4:0"))

	_, err = svc.Content.LatestPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRevalidationPurgeWithoutRedis(t *testing.T) {
	svc := New(zap.NewNop(), repository.New(nil, nil, time.Minute), Deps{})

	purged, err := svc.Revalidation.Purge(context.Background())
	require.NoError(t, err)
	assert.Zero(t, purged)
}
