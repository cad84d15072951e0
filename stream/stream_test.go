package stream

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/kabu1204/go-sortbench/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intCmp = types.Erase(types.Natural[int]())

func even(e interface{}) bool { return e.(int)%2 == 0 }

func TestFilterMapToSlice(t *testing.T) {
	got := Of(1, 2, 3, 4, 5, 6).
		Filter(even).
		Map(func(e interface{}) interface{} { return e.(int) * 10 }).
		ToSlice()
	assert.Equal(t, types.Slice{20, 40, 60}, got)
}

func TestEmptySource(t *testing.T) {
	assert.Equal(t, types.Slice{}, Of().ToSlice())
	assert.Equal(t, int64(0), FromSlice([]int{}).Count())
	assert.Nil(t, Slice(42))
	assert.Nil(t, Slice(nil))
}

func TestPeekSeesEveryElement(t *testing.T) {
	var seen []int
	n := Of(3, 1, 2).Peek(func(e interface{}) { seen = append(seen, e.(int)) }).Count()
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []int{3, 1, 2}, seen)
}

func TestLimitStopsUpstream(t *testing.T) {
	pulled := 0
	got := Of(1, 2, 3, 4, 5, 6, 7, 8).
		Peek(func(interface{}) { pulled++ }).
		Filter(even).
		Limit(2).
		ToSlice()
	assert.Equal(t, types.Slice{2, 4}, got)
	assert.Equal(t, 4, pulled)
}

func TestSkip(t *testing.T) {
	assert.Equal(t, types.Slice{3, 4}, Of(1, 2, 3, 4).Skip(2).ToSlice())
	assert.Equal(t, types.Slice{}, Of(1, 2).Skip(5).ToSlice())
	assert.Equal(t, types.Slice{2, 3}, Of(1, 2, 3, 4).Skip(1).Limit(2).ToSlice())
}

func TestDistinctKeepsFirst(t *testing.T) {
	type pair struct {
		key string
		val int
	}
	got := Of(pair{"a", 1}, pair{"b", 2}, pair{"a", 3}, pair{"c", 4}, pair{"b", 5}).
		Distinct(func(e interface{}) string { return e.(pair).key }).
		ToSlice()
	assert.Equal(t, types.Slice{pair{"a", 1}, pair{"b", 2}, pair{"c", 4}}, got)
}

func TestSortedIsStable(t *testing.T) {
	type pair struct {
		key, pos int
	}
	byKey := types.Erase(func(a, b pair) int { return a.key - b.key })
	got := Of(pair{2, 0}, pair{2, 1}, pair{1, 2}, pair{1, 3}).Sorted(byKey).ToSlice()
	assert.Equal(t, types.Slice{pair{1, 2}, pair{1, 3}, pair{2, 0}, pair{2, 1}}, got)
}

func TestSortedThenLimit(t *testing.T) {
	got := Of(9, 4, 7, 1, 8, 2).Sorted(intCmp).Limit(3).ToSlice()
	assert.Equal(t, types.Slice{1, 2, 4}, got)

	got = Of(9, 4, 7, 1, 8, 2).Limit(3).Sorted(intCmp).ToSlice()
	assert.Equal(t, types.Slice{4, 7, 9}, got)
}

func TestToSliceOf(t *testing.T) {
	got := FromSlice([]int{5, 3, 4}).
		Sorted(intCmp).
		Map(func(e interface{}) interface{} { return strconv.Itoa(e.(int)) }).
		ToSliceOf(reflect.TypeOf(""))
	require.IsType(t, []string{}, got)
	assert.Equal(t, []string{"3", "4", "5"}, got)
}

func TestForEach(t *testing.T) {
	sum := 0
	Of(1, 2, 3).ForEach(func(e interface{}) { sum += e.(int) })
	assert.Equal(t, 6, sum)
}

func TestStringNamesStages(t *testing.T) {
	s := Of(1).Filter(even).Limit(1)
	assert.Equal(t, "Of -> Filter -> Limit", s.String())
}

type countdown struct{ n int }

func (c *countdown) Next() (interface{}, bool) {
	if c.n == 0 {
		return nil, false
	}
	c.n--
	return c.n, true
}

func (c *countdown) Len() int { return -1 }

func TestFromUnknownLength(t *testing.T) {
	assert.Equal(t, types.Slice{2, 1, 0}, From(&countdown{n: 3}).ToSlice())
	assert.Equal(t, types.Slice{3, 2}, From(&countdown{n: 5}).Skip(1).Limit(2).ToSlice())
	assert.Equal(t, types.Slice{0, 1, 2}, From(&countdown{n: 3}).Sorted(intCmp).ToSlice())
}
