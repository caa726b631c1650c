package collections

// HashMap is a string-keyed associative array with an explicit, caller
// controlled bucket array.
type HashMap[V any] interface {
	Put(key string, value V)
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	Remove(key string)
	ResizeTable(newCapacity int)
	TableLoad() float64
	EmptyBuckets() int
	Clear()
	Keys() []string
	Values() []V
	Size() int
	Capacity() int
	String() string
}

type Entry[V any] struct {
	Key   string
	Value V
}

func normalizeCapacity(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return capacity
}
