package mocks

import (
	"context"
	"cyclebook/shared/cache"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// MemoryCache is an in-process cache.RedisCache. TTLs are ignored.
// SaveDelay holds every Save back to mimic a slow round trip.
type MemoryCache struct {
	SaveDelay time.Duration

	mu     sync.Mutex
	values map[string][]byte
}

var _ cache.RedisCache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: map[string][]byte{}}
}

func (m *MemoryCache) Save(_ context.Context, key string, value any, _ int) error {
	if m.SaveDelay > 0 {
		time.Sleep(m.SaveDelay)
	}

	var raw []byte

	switch v := value.(type) {
	case string:
		raw = []byte(v)
	default:
		var err error

		raw, err = json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = raw

	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	raw, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	if v, ok := value.(*string); ok {
		*v = string(raw)

		return nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (m *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]

	return ok, nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *MemoryCache) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var current int64

	if raw, ok := m.values[key]; ok {
		parsed, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to increment cache value: %w", err)
		}

		current = parsed
	}

	current++
	m.values[key] = []byte(strconv.FormatInt(current, 10))

	return current, nil
}

// Has reports whether key currently holds a value.
func (m *MemoryCache) Has(key string) bool {
	ok, _ := m.Exists(context.Background(), key)

	return ok
}
