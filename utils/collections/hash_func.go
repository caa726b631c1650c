package collections

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a non-negative integer. It must be deterministic.
type HashFunc func(key string) uint64

// StringSum adds up the bytes of the key. Anagrams collide.
func StringSum(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(key[i])
	}
	return h
}

// StringWeighted weights every byte by its 1-based position.
func StringWeighted(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(i+1) * uint64(key[i])
	}
	return h
}

func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
