package stream

import (
	"reflect"

	"github.com/kabu1204/go-sortbench/types"
)

// Slice copies any slice into a types.Slice. It returns nil for non-slices.
func Slice(elems interface{}) types.Slice {
	if elems == nil || reflect.TypeOf(elems).Kind() != reflect.Slice {
		return nil
	}
	valueOfElems := reflect.ValueOf(elems)
	n := valueOfElems.Len()
	slice := make(types.Slice, 0, n)
	for i := 0; i < n; i++ {
		slice = append(slice, valueOfElems.Index(i).Interface())
	}
	return slice
}

func Of(elems ...interface{}) Stream {
	return newSource(types.Slice(elems), "Of")
}

// FromSlice streams the elements of any slice, such as a []record.Record.
func FromSlice(elems interface{}) Stream {
	return newSource(Slice(elems), "FromSlice")
}

// From streams whatever it yields. An iterator that cannot tell its length
// up front reports -1 from Len.
func From(it types.Iterator) Stream {
	return &stream{
		source:  it,
		prev:    nil,
		wrapper: defaultWrapper,
		Name:    "From",
	}
}

func newSource(slice types.Slice, name string) *stream {
	return &stream{
		source:  slice.Iterator(),
		prev:    nil,
		wrapper: defaultWrapper,
		Name:    name,
	}
}
