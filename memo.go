package aoc

import (
	"sync"

	"tailscale.com/util/deephash"
	"tailscale.com/util/mak"
)

// Memo caches the result of an expensive function of K, such as parsing a
// puzzle input, keyed by the deep hash of the argument. Parts of the same day
// usually share their input, so the second part can reuse the first part's
// parse.
//
// Errors are not cached.
type Memo[K, V any] struct {
	mu   sync.Mutex
	hash func(*K) deephash.Sum
	m    map[deephash.Sum]V
}

// Get returns f(k), calling f only if no value is cached for a deeply equal k.
func (m *Memo[K, V]) Get(k K, f func(K) (V, error)) (V, error) {
	m.mu.Lock()
	if m.hash == nil {
		m.hash = deephash.HasherForType[K]()
	}
	sum := m.hash(&k)
	if v, ok := m.m[sum]; ok {
		m.mu.Unlock()
		return v, nil
	}
	m.mu.Unlock()

	v, err := f(k)
	if err != nil {
		return v, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	mak.Set(&m.m, sum, v)
	return v, nil
}

// Len reports the number of cached values.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.m)
}
