package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalAndReverse(t *testing.T) {
	cmp := Natural[string]()
	assert.Negative(t, cmp("a", "b"))
	assert.Zero(t, cmp("a", "a"))
	assert.Positive(t, cmp("b", "a"))

	desc := Reverse(cmp)
	assert.Positive(t, desc("a", "b"))
	assert.Zero(t, desc("a", "a"))
}

func TestErase(t *testing.T) {
	cmp := Erase(Natural[int]())
	assert.Negative(t, cmp(1, 2))
	assert.Panics(t, func() { cmp("1", 2) })
}

func TestSwapAndReverseSlice(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	Swap(s, 0, 4)
	assert.Equal(t, []int{5, 2, 3, 4, 1}, s)

	ReverseSlice(s)
	assert.Equal(t, []int{1, 4, 3, 2, 5}, s)

	var empty []int
	ReverseSlice(empty)
	assert.Empty(t, empty)
}

func TestIsSorted(t *testing.T) {
	cmp := Natural[int]()
	assert.True(t, IsSorted([]int{}, cmp))
	assert.True(t, IsSorted([]int{1, 1, 2}, cmp))
	assert.False(t, IsSorted([]int{2, 1}, cmp))
}

func TestSliceIterator(t *testing.T) {
	it := Slice{"a", "b"}.Iterator()
	assert.Equal(t, 2, it.Len())

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = it.Next()
	assert.False(t, ok)
}
