// Package ratelimit implements a fixed-window request limiter over an
// injectable counter store, so counters can live in process memory or in a
// shared backend when several instances serve traffic.
package ratelimit

import (
	"context"
	"time"
)

// Store increments and returns the counter for key within the window that
// begins at windowStart.
type Store interface {
	Increment(ctx context.Context, key string, windowStart time.Time) (int64, error)
}

type Limiter struct {
	store  Store
	window time.Duration
	max    int64
	now    func() time.Time
}

func New(store Store, window time.Duration, max int64) *Limiter {
	return &Limiter{
		store:  store,
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Allow records a request for key and reports whether it is within the
// limit. On store failure the request is allowed and the error returned.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.store.Increment(ctx, key, l.now().Truncate(l.window))
	if err != nil {
		return true, err
	}
	return count <= l.max, nil
}
