package dataset

import (
	"math/rand"
	"reflect"
	"slices"

	"github.com/kabu1204/go-sortbench/stream"
	"github.com/kabu1204/go-sortbench/types"
)

// Kind names an input distribution.
type Kind string

const (
	Sorted   Kind = "Sorted"
	Shuffled Kind = "Shuffled"
	Reversed Kind = "Reversed"
)

var Kinds = []Kind{Sorted, Shuffled, Reversed}

type Distribution[E any] struct {
	Kind Kind
	Data []E
}

// Distributions returns data arranged as each Kind, in the order of Kinds.
// Every Data slice is its own copy; data itself is left untouched. The same
// seed always yields the same shuffle.
func Distributions[E any](data []E, cmp types.Comparator[E], seed int64) []Distribution[E] {
	elemType := reflect.TypeOf((*E)(nil)).Elem()
	sorted := stream.FromSlice(data).Sorted(types.Erase(cmp)).ToSliceOf(elemType).([]E)

	shuffled := slices.Clone(sorted)
	rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
		types.Swap(shuffled, i, j)
	})

	reversed := slices.Clone(sorted)
	types.ReverseSlice(reversed)

	return []Distribution[E]{
		{Kind: Sorted, Data: sorted},
		{Kind: Shuffled, Data: shuffled},
		{Kind: Reversed, Data: reversed},
	}
}
