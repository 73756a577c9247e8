// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when STORE=memory and in tests, where durability is not required.
//
// Characteristics:
//   - Blobs are copied on the way in and out so callers cannot alias them.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memory is a map-based Store implementation.
type memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	daily map[string]DailyResult // keyed by date + "/" + difficulty
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		blobs: make(map[string][]byte),
		daily: make(map[string]DailyResult),
	}
}

func (m *memory) Save(ctx context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), blob...)
	return nil
}

func (m *memory) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.blobs[key]; ok {
		return append([]byte(nil), b...), nil
	}
	return nil, ErrNotFound
}

func (m *memory) RecordDaily(ctx context.Context, r DailyResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := r.Date + "/" + r.Difficulty
	if prev, ok := m.daily[k]; ok {
		if r.GuessedPoints < prev.GuessedPoints {
			return nil
		}
		r.CreatedAt = prev.CreatedAt
	} else if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	m.daily[k] = r
	return nil
}

func (m *memory) DailyResults(ctx context.Context, limit int) ([]DailyResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]DailyResult, 0, len(m.daily))
	for _, r := range m.daily {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Difficulty < out[j].Difficulty
	})
	if limit <= 0 {
		limit = 30
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
