package collections

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainedMap(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	m := NewChainedMap[*Mock](4, nil)
	m.Put("aa", &Mock{
		A: "aa",
		B: 22,
	})
	m.Put("bb", &Mock{
		A: "bb",
		B: 55,
	})
	require.Equal(t, 2, m.Size())
	require.Equal(t, true, m.ContainsKey("aa"))
	require.Equal(t, true, m.ContainsKey("bb"))
	require.Equal(t, false, m.ContainsKey("cc"))
	require.Equal(t, 2, len(m.Keys()))
	require.Equal(t, 2, len(m.Values()))
	m.Remove("bb")
	require.Equal(t, false, m.ContainsKey("bb"))
	require.Equal(t, 1, m.Size())
}

func TestChainedMapOverwrite(t *testing.T) {
	m := NewChainedMap[int](4, StringSum)
	m.Put("a", 1)
	m.Put("a", 2)
	require.Equal(t, 1, m.Size())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestChainedMapNeverGrowsOnItsOwn(t *testing.T) {
	m := NewChainedMap[int](1, nil)
	for i := 0; i < 100; i++ {
		m.Put(strconv.Itoa(i), i)
	}
	require.Equal(t, 1, m.Capacity())
	require.Equal(t, 100.0, m.TableLoad())
	require.Equal(t, 0, m.EmptyBuckets())
	for i := 0; i < 100; i++ {
		v, ok := m.Get(strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestChainedMapEmptyBuckets(t *testing.T) {
	m := NewChainedMap[int](100, StringSum)
	require.Equal(t, 100, m.EmptyBuckets())
	m.Put("key1", 10)
	require.Equal(t, 99, m.EmptyBuckets())
	m.Put("key2", 20)
	require.Equal(t, 98, m.EmptyBuckets())
	m.Put("key1", 30)
	require.Equal(t, 98, m.EmptyBuckets())
	m.Put("key4", 40)
	require.Equal(t, 97, m.EmptyBuckets())
}

func TestChainedMapRemove(t *testing.T) {
	m := NewChainedMap[int](2, constantHash)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Remove("a")
	m.Remove("a")
	m.Remove("missing")
	require.Equal(t, 2, m.Size())
	_, ok := m.Get("a")
	require.False(t, ok)
	v, ok := m.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
	m.Put("a", 4)
	require.Equal(t, 3, m.Size())
}

func TestChainedMapResize(t *testing.T) {
	m := NewChainedMap[int](75, StringWeighted)
	keys := make([]int, 0)
	for k := 1; k < 1000; k += 13 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	for capacity := 111; capacity < 1000; capacity += 117 {
		m.ResizeTable(capacity)
		require.Equal(t, capacity, m.Capacity())
		require.Equal(t, len(keys), m.Size())
		for _, k := range keys {
			v, ok := m.Get(strconv.Itoa(k))
			require.True(t, ok)
			require.Equal(t, k*42, v)
			require.False(t, m.ContainsKey(strconv.Itoa(k+1)))
		}
	}
	m.ResizeTable(0)
	require.Equal(t, 930, m.Capacity())
	m.ResizeTable(1)
	require.Equal(t, 1, m.Capacity())
	require.Equal(t, m.Size(), len(m.Keys()))
}

func TestChainedMapClear(t *testing.T) {
	m := NewChainedMap[int](50, StringSum)
	m.Put("key1", 10)
	m.Put("key2", 20)
	m.ResizeTable(100)
	m.Clear()
	require.Equal(t, 0, m.Size())
	require.Equal(t, 100, m.Capacity())
	require.Equal(t, 100, m.EmptyBuckets())
	require.False(t, m.ContainsKey("key1"))
}

func TestChainedMapString(t *testing.T) {
	m := NewChainedMap[int](2, constantHash)
	m.Put("a", 1)
	m.Put("b", 2)
	require.Equal(t, "0: -> (a: 1) -> (b: 2)\n1:\n", m.String())
}
