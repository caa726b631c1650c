package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
)

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

type hashSet struct {
	entries *chainedMap[struct{}]
}

// NewHashSet returns a string set stored in a chained map of the given
// capacity.
func NewHashSet(capacity int, hashFunc HashFunc, opts ...Option) Set[string] {
	return &hashSet{
		entries: newChainedMap[struct{}](capacity, hashFunc, opts...),
	}
}

func (s *hashSet) Contains(v string) bool {
	return s.entries.ContainsKey(v)
}

func (s *hashSet) Add(v string) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries.Put(v, struct{}{})
	return nil
}

func (s *hashSet) Remove(v string) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	s.entries.Remove(v)
	return nil
}

func (s *hashSet) Size() int {
	return s.entries.Size()
}

func (s *hashSet) Entries() []string {
	return s.entries.Keys()
}
