package stream

import (
	"fmt"
	"reflect"

	"github.com/kabu1204/go-sortbench/types"
)

type Stream interface {
	fmt.Stringer

	// stateless
	Filter(p types.Predicate) Stream
	Map(f types.Function) Stream
	Peek(f types.Consumer) Stream

	// stateful
	Distinct(key types.KeyFunction) Stream           // keeps the first element seen per key
	Sorted(cmp types.Comparator[interface{}]) Stream // stable
	Limit(n int64) Stream                            // first n elems
	Skip(n int64) Stream                             // skip first n elems

	ForEach(f types.Consumer)
	ToSlice() types.Slice
	ToSliceOf(typ reflect.Type) interface{}
	Count() int64
}
