package hashMap

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonEmptyBuckets[V any](m *HashMap[V]) int {
	n := 0
	for _, head := range m.table {
		if head != nil {
			n++
		}
	}
	return n
}

func chainLen[V any](m *HashMap[V]) int {
	n := 0
	for _, head := range m.table {
		for l := head; l != nil; l = l.next {
			n++
		}
	}
	return n
}

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-3) })
	assert.NotPanics(t, func() { New[int](1) })
}

func TestGetMissing(t *testing.T) {
	m := New[int](10)
	v, ok := m.Get("nothing")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, m.Contains("nothing"))
	assert.False(t, m.Remove("nothing"))
	assert.Equal(t, 0, m.Size())
}

func TestPutGet(t *testing.T) {
	m := New[int](10)
	m.Put("cat", 1)
	m.Put("dog", 2)

	v, ok := m.Get("cat")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = m.Get("dog")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, m.Size())
}

func TestPutOverwrite(t *testing.T) {
	m := New[int](10)
	m.Put("cat", 1)
	size, capacity := m.Size(), m.Capacity()

	m.Put("cat", 7)
	v, ok := m.Get("cat")
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, size, m.Size())
	assert.Equal(t, capacity, m.Capacity())
}

func TestSizeCountsDistinctKeys(t *testing.T) {
	words := []string{"a", "b", "a", "c", "b", "d", "a", "e", "e"}
	m := New[int](2)
	for i, w := range words {
		m.Put(w, i)
	}
	assert.Equal(t, 5, m.Size())
	assert.Equal(t, m.Size(), chainLen(m))

	v, _ := m.Get("a")
	assert.Equal(t, 6, v)
	v, _ = m.Get("e")
	assert.Equal(t, 8, v)
}

func TestCollisionsChainAtTail(t *testing.T) {
	// cat, act and tac share a character sum of 312.
	m := New[int](16)
	m.Put("cat", 1)
	m.Put("act", 2)
	m.Put("tac", 3)

	assert.Equal(t, 15, m.EmptyBuckets())
	assert.Equal(t, "Bucket 8 -> (cat, 1) -> (act, 2) -> (tac, 3) -> null\n", m.String())
	assert.Equal(t, []string{"cat", "act", "tac"}, slices.Collect(m.Keys()))
}

func TestResizeDoublesCapacity(t *testing.T) {
	m := New[int](4)
	m.Put("a", 1)
	m.Put("b", 2)
	assert.Equal(t, 4, m.Capacity())

	m.Put("c", 3)
	assert.Equal(t, 8, m.Capacity())
	assert.Equal(t, 3, m.Size())

	m.Put("d", 4)
	m.Put("e", 5)
	assert.Equal(t, 8, m.Capacity())
	m.Put("f", 6)
	assert.Equal(t, 16, m.Capacity())

	for i, k := range []string{"a", "b", "c", "d", "e", "f"} {
		v, ok := m.Get(k)
		require.True(t, ok, k)
		assert.Equal(t, i+1, v)
	}
}

func TestCapacityOne(t *testing.T) {
	m := New[string](1)
	m.Put("x", "1")
	assert.Equal(t, 2, m.Capacity())
	m.Put("y", "2")
	assert.Equal(t, 4, m.Capacity())
	m.Put("z", "3")
	assert.Equal(t, 8, m.Capacity())
	assert.Equal(t, 3, m.Size())
	assert.True(t, m.Contains("x"))
	assert.True(t, m.Contains("y"))
	assert.True(t, m.Contains("z"))
}

func TestLoadStaysBelowThreshold(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	m := New[int](3, WithHashFunc(WeightedCharSum))
	present := map[string]int{}

	for i := range 2000 {
		key := fmt.Sprintf("w%d", r.Intn(1500))
		before := m.Capacity()
		_, existed := present[key]
		m.Put(key, i)
		present[key] = i

		assert.Less(t, m.TableLoad(), maxTableLoad)
		if existed {
			assert.Equal(t, before, m.Capacity())
		} else if m.Capacity() != before {
			assert.Equal(t, before*2, m.Capacity())
		}
	}

	assert.Equal(t, len(present), m.Size())
	for k, v := range present {
		got, ok := m.Get(k)
		require.True(t, ok, k)
		assert.Equal(t, v, got)
	}
}

func TestRemove(t *testing.T) {
	m := New[int](16)
	m.Put("cat", 1)
	m.Put("act", 2)
	m.Put("tac", 3)
	m.Put("dog", 4)

	assert.True(t, m.Remove("act"))
	assert.False(t, m.Contains("act"))
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []string{"cat", "tac"}, chainKeys(m, "cat"))

	assert.True(t, m.Remove("cat"))
	assert.Equal(t, []string{"tac"}, chainKeys(m, "tac"))

	before := m.String()
	assert.False(t, m.Remove("cat"))
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, before, m.String())

	assert.True(t, m.Remove("tac"))
	assert.True(t, m.Remove("dog"))
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 16, m.Capacity())
	assert.Equal(t, 16, m.EmptyBuckets())
}

func chainKeys[V any](m *HashMap[V], key string) []string {
	var out []string
	for l := m.table[m.bucketIndex(key, m.capacity)]; l != nil; l = l.next {
		out = append(out, l.key)
	}
	return out
}

func TestEmptyBucketsInvariant(t *testing.T) {
	m := New[int](5)
	for i := range 300 {
		m.Put(strings.Repeat("z", i%17)+fmt.Sprint(i), i)
		if i%7 == 0 {
			m.Remove(fmt.Sprint(i - 1))
		}
		assert.Equal(t, m.Capacity(), m.EmptyBuckets()+nonEmptyBuckets(m))
		assert.Equal(t, m.Size(), chainLen(m))
	}
}

func TestResizeKeepsChainOrder(t *testing.T) {
	// ab and ba always share a bucket under CharSum.
	m := New[int](64)
	m.Put("ba", 1)
	m.Put("ab", 2)
	m.Resize(128)
	assert.Equal(t, []string{"ba", "ab"}, chainKeys(m, "ab"))
	assert.Equal(t, 128, m.Capacity())
	assert.Equal(t, 2, m.Size())
}

func TestResizePanicsOnNonPositiveCapacity(t *testing.T) {
	m := New[int](4)
	assert.Panics(t, func() { m.Resize(0) })
	assert.Panics(t, func() { m.Resize(-1) })
}

func TestNegativeHashIndex(t *testing.T) {
	m := New[int](8, WithHashFunc(func(string) int32 { return -5 }))
	m.Put("neg", 1)
	assert.Equal(t, "Bucket 3 -> (neg, 1) -> null\n", m.String())
	v, ok := m.Get("neg")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestOverflowingKey(t *testing.T) {
	key := strings.Repeat("\U0010FFFF", 2000)
	assert.Less(t, CharSum(key), int32(0))

	m := New[int](7)
	m.Put(key, 9)
	v, ok := m.Get(key)
	require.True(t, ok)
	assert.Equal(t, 9, v)
	assert.True(t, m.Remove(key))
}

func TestHashFunctions(t *testing.T) {
	assert.Equal(t, int32(312), CharSum("cat"))
	assert.Equal(t, CharSum("cat"), CharSum("act"))
	assert.Equal(t, int32(641), WeightedCharSum("cat"))
	assert.Equal(t, int32(643), WeightedCharSum("act"))
	assert.Equal(t, int32(0), CharSum(""))
	assert.Equal(t, WeightedCharSum("stable"), WeightedCharSum("stable"))

	h, err := HashFuncByName("weighted")
	require.NoError(t, err)
	assert.Equal(t, int32(641), h("cat"))
	h, err = HashFuncByName("")
	require.NoError(t, err)
	assert.Equal(t, int32(312), h("cat"))
	_, err = HashFuncByName("md5")
	assert.Error(t, err)
}

func TestTableLoad(t *testing.T) {
	m := New[int](8)
	m.Put("a", 1)
	m.Put("b", 1)
	m.Put("c", 1)
	assert.InDelta(t, 0.375, m.TableLoad(), 1e-9)
}

func TestAllStopsEarly(t *testing.T) {
	m := New[int](32)
	for _, k := range []string{"a", "b", "c", "d"} {
		m.Put(k, 0)
	}
	var seen []string
	m.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestPrintSkipsEmptyBuckets(t *testing.T) {
	m := New[int](4)
	assert.Equal(t, "", m.String())
	m.Put("a", 1) // 97 % 4 = 1
	var s strings.Builder
	require.NoError(t, m.Print(&s))
	assert.Equal(t, "Bucket 1 -> (a, 1) -> null\n", s.String())
}
