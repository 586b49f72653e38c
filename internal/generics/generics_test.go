package generics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[int]string{1: "1", 5: "5", 3: "3"}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []int{1, 3, 5}
	for range 100 {
		assert.Equal(t, want, slices.Collect(SortedKeys(m)))
		assert.Equal(t, want, SortedKeysSlice(m))
	}
}

func TestSliceMap(t *testing.T) {
	got := SliceMap([]int{1, 2, 3}, func(e int) string { return string(rune('a' + e)) })
	assert.Equal(t, []string{"b", "c", "d"}, got)
}

func TestFilter(t *testing.T) {
	got := Filter([]string{"pos_0", "pos_1", "pos_2"}, func(e string) bool { return e != "pos_1" })
	assert.Equal(t, []string{"pos_0", "pos_2"}, got)
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.False(t, s2.Has(3))
}
