package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type counter struct {
	windowStart time.Time
	count       int64
}

// MemoryStore keeps counters in process memory. It is only correct for a
// single instance.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	now      func() time.Time
	cron     *cron.Cron
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]*counter),
		window:   window,
		now:      time.Now,
	}
}

// StartSweeper drops expired windows on a schedule. Call the returned
// function to stop it.
func (s *MemoryStore) StartSweeper() (func(), error) {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.window), s.sweep); err != nil {
		return nil, err
	}
	c.Start()
	s.cron = c
	return func() { <-c.Stop().Done() }, nil
}

func (s *MemoryStore) Increment(_ context.Context, key string, windowStart time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s:%d", key, windowStart.Unix())
	c, ok := s.counters[id]
	if !ok {
		c = &counter{windowStart: windowStart}
		s.counters[id] = c
	}
	c.count++
	return c.count, nil
}

func (s *MemoryStore) sweep() {
	cutoff := s.now().Add(-s.window)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.counters {
		if !c.windowStart.After(cutoff) {
			delete(s.counters, id)
		}
	}
}

func (s *MemoryStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}
