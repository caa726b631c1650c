package collections

import (
	"github.com/tuannh982/hashmap/utils/math"

	log "github.com/sirupsen/logrus"
)

// FindMode returns the most frequent values and their frequency, in time
// linear in len(values). Ties are all returned, in no particular order.
func FindMode(values []string) (Set[string], int) {
	return FindModeWith(values, StringSum)
}

func FindModeWith(values []string, hashFunc HashFunc, opts ...Option) (Set[string], int) {
	capacity := math.Max(1, math.DivFloor(len(values), 3))
	counts := newChainedMap[int](capacity, hashFunc, opts...)
	highest := 0
	for _, v := range values {
		n, _ := counts.Get(v)
		n++
		counts.Put(v, n)
		highest = math.Max(highest, n)
	}
	modes := NewHashSet(capacity, hashFunc, opts...)
	for _, e := range counts.Entries() {
		if e.Value == highest {
			_ = modes.Add(e.Key)
		}
	}
	counts.log.WithFields(log.Fields{
		"values":    len(values),
		"modes":     modes.Size(),
		"frequency": highest,
	}).Debug("mode computed")
	return modes, highest
}
