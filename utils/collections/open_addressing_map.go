package collections

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

const maxLoadFactor = 0.5

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotDead
)

type slot[V any] struct {
	state slotState
	entry Entry[V]
}

func (s slot[V]) String() string {
	switch s.state {
	case slotEmpty:
		return "None"
	case slotLive:
		return fmt.Sprintf("K: %s V: %v", s.entry.Key, s.entry.Value)
	case slotDead:
		return fmt.Sprintf("K: %s V: %v TS", s.entry.Key, s.entry.Value)
	default:
		panic(fmt.Sprintf("unknown slot state %d", s.state))
	}
}

type openAddressingMap[V any] struct {
	slots    []slot[V]
	size     int
	hashFunc HashFunc
	log      *log.Entry
}

// NewOpenAddressingMap returns a map resolving collisions with quadratic
// probing. Removed entries stay in their slot as tombstones so probe
// sequences running through them stay intact; they are dropped on resize.
//
// Quadratic probing only visits every slot when the capacity is prime and
// the table is at most half full. Probing is therefore bounded to capacity
// steps: Put grows the table when the bound is hit, lookups report absent.
func NewOpenAddressingMap[V any](capacity int, hashFunc HashFunc, opts ...Option) HashMap[V] {
	c := newConfig("open_addressing", hashFunc, opts...)
	return &openAddressingMap[V]{
		slots:    make([]slot[V], normalizeCapacity(capacity)),
		hashFunc: c.hashFunc,
		log:      c.log,
	}
}

func (m *openAddressingMap[V]) probe(index uint64, i int) int {
	n := uint64(len(m.slots))
	return int((index + uint64(i)*uint64(i)) % n)
}

func (m *openAddressingMap[V]) home(key string) uint64 {
	return m.hashFunc(key) % uint64(len(m.slots))
}

// find returns the slot holding key, dead or alive, or -1.
func (m *openAddressingMap[V]) find(key string) int {
	index := m.home(key)
	for i := 0; i < len(m.slots); i++ {
		pos := m.probe(index, i)
		s := &m.slots[pos]
		switch s.state {
		case slotEmpty:
			return -1
		case slotLive, slotDead:
			if s.entry.Key == key {
				return pos
			}
		}
	}
	return -1
}

// insert stores key in slots without any load check. It returns false when
// the probe bound is exhausted.
func insert[V any](slots []slot[V], index uint64, key string, value V) (added bool, ok bool) {
	n := uint64(len(slots))
	for i := uint64(0); i < n; i++ {
		s := &slots[(index+i*i)%n]
		switch s.state {
		case slotEmpty:
			s.state = slotLive
			s.entry = Entry[V]{Key: key, Value: value}
			return true, true
		case slotLive:
			if s.entry.Key == key {
				s.entry.Value = value
				return false, true
			}
		case slotDead:
			if s.entry.Key == key {
				s.state = slotLive
				s.entry.Value = value
				return true, true
			}
		}
	}
	return false, false
}

func (m *openAddressingMap[V]) Put(key string, value V) {
	if m.TableLoad() >= maxLoadFactor {
		m.ResizeTable(2 * len(m.slots))
	}
	for {
		added, ok := insert(m.slots, m.home(key), key, value)
		if ok {
			if added {
				m.size++
			}
			return
		}
		m.log.WithFields(log.Fields{
			"key":      key,
			"capacity": len(m.slots),
		}).Warn("probe sequence exhausted, growing table")
		m.ResizeTable(2 * len(m.slots))
	}
}

func (m *openAddressingMap[V]) Get(key string) (v V, found bool) {
	pos := m.find(key)
	if pos < 0 || m.slots[pos].state != slotLive {
		return v, false
	}
	return m.slots[pos].entry.Value, true
}

func (m *openAddressingMap[V]) ContainsKey(key string) bool {
	if m.size == 0 {
		return false
	}
	_, found := m.Get(key)
	return found
}

func (m *openAddressingMap[V]) Remove(key string) {
	pos := m.find(key)
	if pos < 0 || m.slots[pos].state != slotLive {
		return
	}
	m.slots[pos].state = slotDead
	m.size--
}

// rehash builds a slot array of the given capacity holding every live entry.
// It doubles the capacity until the probe sequences can place all entries.
func (m *openAddressingMap[V]) rehash(capacity int) []slot[V] {
	for {
		slots := make([]slot[V], capacity)
		placed := true
		for _, s := range m.slots {
			if s.state != slotLive {
				continue
			}
			index := m.hashFunc(s.entry.Key) % uint64(capacity)
			if _, ok := insert(slots, index, s.entry.Key, s.entry.Value); !ok {
				placed = false
				break
			}
		}
		if placed {
			return slots
		}
		m.log.WithField("capacity", capacity).Warn("rehash could not place every entry, doubling capacity")
		capacity *= 2
	}
}

func (m *openAddressingMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < 1 || newCapacity < m.size {
		return
	}
	oldCapacity := len(m.slots)
	m.slots = m.rehash(newCapacity)
	m.log.WithFields(log.Fields{
		"from": oldCapacity,
		"to":   len(m.slots),
		"size": m.size,
	}).Debug("table resized")
}

func (m *openAddressingMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(len(m.slots))
}

// EmptyBuckets reports capacity minus live entries. Tombstoned slots are
// counted as empty even though probing treats them as occupied.
func (m *openAddressingMap[V]) EmptyBuckets() int {
	return len(m.slots) - m.size
}

func (m *openAddressingMap[V]) Clear() {
	for i := range m.slots {
		m.slots[i] = slot[V]{}
	}
	m.size = 0
}

func (m *openAddressingMap[V]) Keys() []string {
	arr := make([]string, 0, m.size)
	for _, s := range m.slots {
		if s.state == slotLive {
			arr = append(arr, s.entry.Key)
		}
	}
	return arr
}

func (m *openAddressingMap[V]) Values() []V {
	arr := make([]V, 0, m.size)
	for _, s := range m.slots {
		if s.state == slotLive {
			arr = append(arr, s.entry.Value)
		}
	}
	return arr
}

func (m *openAddressingMap[V]) Size() int {
	return m.size
}

func (m *openAddressingMap[V]) Capacity() int {
	return len(m.slots)
}

func (m *openAddressingMap[V]) String() string {
	var sb strings.Builder
	for i, s := range m.slots {
		fmt.Fprintf(&sb, "%d: %s\n", i, s)
	}
	return sb.String()
}
