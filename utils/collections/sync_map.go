package collections

import "sync"

type syncMap[V any] struct {
	mu    sync.RWMutex
	inner HashMap[V]
}

// NewSyncMap guards inner with one lock per map. Lookups never mutate the
// wrapped map, so readers share the lock.
func NewSyncMap[V any](inner HashMap[V]) HashMap[V] {
	return &syncMap[V]{inner: inner}
}

func (m *syncMap[V]) Put(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.Put(key, value)
}

func (m *syncMap[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Get(key)
}

func (m *syncMap[V]) ContainsKey(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.ContainsKey(key)
}

func (m *syncMap[V]) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.Remove(key)
}

func (m *syncMap[V]) ResizeTable(newCapacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.ResizeTable(newCapacity)
}

func (m *syncMap[V]) TableLoad() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.TableLoad()
}

func (m *syncMap[V]) EmptyBuckets() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.EmptyBuckets()
}

func (m *syncMap[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner.Clear()
}

func (m *syncMap[V]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Keys()
}

func (m *syncMap[V]) Values() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Values()
}

func (m *syncMap[V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Size()
}

func (m *syncMap[V]) Capacity() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Capacity()
}

func (m *syncMap[V]) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.String()
}
