package collections

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type chainedMap[V any] struct {
	buckets  [][]Entry[V]
	size     int
	hashFunc HashFunc
	log      *log.Entry
}

// NewChainedMap returns a map resolving collisions by chaining entries in a
// per-bucket slice. It never resizes on its own.
func NewChainedMap[V any](capacity int, hashFunc HashFunc, opts ...Option) HashMap[V] {
	return newChainedMap[V](capacity, hashFunc, opts...)
}

func newChainedMap[V any](capacity int, hashFunc HashFunc, opts ...Option) *chainedMap[V] {
	c := newConfig("chained", hashFunc, opts...)
	return &chainedMap[V]{
		buckets:  make([][]Entry[V], normalizeCapacity(capacity)),
		hashFunc: c.hashFunc,
		log:      c.log,
	}
}

func (m *chainedMap[V]) bucket(key string) int {
	return int(m.hashFunc(key) % uint64(len(m.buckets)))
}

func lookup[V any](key string, entries []Entry[V]) int {
	for i := range entries {
		if entries[i].Key == key {
			return i
		}
	}
	return -1
}

func (m *chainedMap[V]) Put(key string, value V) {
	b := m.bucket(key)
	if i := lookup(key, m.buckets[b]); i >= 0 {
		m.buckets[b][i].Value = value
		return
	}
	m.buckets[b] = append(m.buckets[b], Entry[V]{Key: key, Value: value})
	m.size++
}

func (m *chainedMap[V]) Get(key string) (v V, found bool) {
	entries := m.buckets[m.bucket(key)]
	if i := lookup(key, entries); i >= 0 {
		return entries[i].Value, true
	}
	return v, false
}

func (m *chainedMap[V]) ContainsKey(key string) bool {
	if m.size == 0 {
		return false
	}
	return lookup(key, m.buckets[m.bucket(key)]) >= 0
}

func (m *chainedMap[V]) Remove(key string) {
	b := m.bucket(key)
	entries := m.buckets[b]
	i := lookup(key, entries)
	if i < 0 {
		return
	}
	last := len(entries) - 1
	entries[i] = entries[last]
	entries[last] = Entry[V]{}
	m.buckets[b] = entries[:last]
	m.size--
}

func (m *chainedMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < 1 {
		return
	}
	buckets := make([][]Entry[V], newCapacity)
	for _, entries := range m.buckets {
		for _, e := range entries {
			b := int(m.hashFunc(e.Key) % uint64(newCapacity))
			buckets[b] = append(buckets[b], e)
		}
	}
	m.log.WithFields(log.Fields{
		"from": len(m.buckets),
		"to":   newCapacity,
		"size": m.size,
	}).Debug("table resized")
	m.buckets = buckets
}

func (m *chainedMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

func (m *chainedMap[V]) EmptyBuckets() int {
	n := 0
	for _, entries := range m.buckets {
		if len(entries) == 0 {
			n++
		}
	}
	return n
}

func (m *chainedMap[V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

func (m *chainedMap[V]) Keys() []string {
	arr := make([]string, 0, m.size)
	for _, entries := range m.buckets {
		for _, e := range entries {
			arr = append(arr, e.Key)
		}
	}
	return arr
}

func (m *chainedMap[V]) Values() []V {
	arr := make([]V, 0, m.size)
	for _, entries := range m.buckets {
		for _, e := range entries {
			arr = append(arr, e.Value)
		}
	}
	return arr
}

// Entries walks every bucket in index order.
func (m *chainedMap[V]) Entries() []Entry[V] {
	arr := make([]Entry[V], 0, m.size)
	for _, entries := range m.buckets {
		arr = append(arr, entries...)
	}
	return arr
}

func (m *chainedMap[V]) Size() int {
	return m.size
}

func (m *chainedMap[V]) Capacity() int {
	return len(m.buckets)
}

func (m *chainedMap[V]) String() string {
	var sb strings.Builder
	for i, entries := range m.buckets {
		fmt.Fprintf(&sb, "%d:", i)
		for _, e := range entries {
			fmt.Fprintf(&sb, " -> (%s: %v)", e.Key, e.Value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
