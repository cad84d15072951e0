// Package bench times sorting algorithms against input distributions.
package bench

import (
	"strings"

	"github.com/cornelk/hashmap"
	"github.com/kabu1204/go-sortbench/optional"
	"github.com/kabu1204/go-sortbench/sorting"
	"github.com/kabu1204/go-sortbench/types"
	"github.com/pkg/errors"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm adapts one sorting entry point to a whole-slice run. Run returns
// the comparison count for algorithms that keep one, None otherwise.
type Algorithm[E any] struct {
	Name   string
	Counts bool
	Run    func(s []E, cmp types.Comparator[E]) optional.Optional[int]
}

// Algorithms returns the five algorithms in their reporting order.
func Algorithms[E any]() []Algorithm[E] {
	return []Algorithm[E]{
		{
			Name:   "bubble",
			Counts: true,
			Run: func(s []E, cmp types.Comparator[E]) optional.Optional[int] {
				return optional.Of(sorting.BubbleSort(s, len(s), cmp))
			},
		},
		{
			Name: "merge",
			Run: func(s []E, cmp types.Comparator[E]) optional.Optional[int] {
				sorting.MergeSort(s, 0, len(s)-1, cmp)
				return optional.Empty[int]()
			},
		},
		{
			Name: "quick",
			Run: func(s []E, cmp types.Comparator[E]) optional.Optional[int] {
				sorting.QuickSort(s, 0, len(s)-1, cmp)
				return optional.Empty[int]()
			},
		},
		{
			Name: "heap",
			Run: func(s []E, cmp types.Comparator[E]) optional.Optional[int] {
				sorting.HeapSort(s, 0, len(s)-1, cmp)
				return optional.Empty[int]()
			},
		},
		{
			Name:   "transposition",
			Counts: true,
			Run: func(s []E, cmp types.Comparator[E]) optional.Optional[int] {
				return optional.Of(sorting.TranspositionSort(s, len(s), cmp))
			},
		},
	}
}

// Registry finds algorithms by name.
type Registry[E any] struct {
	byName *hashmap.HashMap
	names  []string
}

// NewRegistry holds algs, or all of Algorithms when none are given.
func NewRegistry[E any](algs ...Algorithm[E]) *Registry[E] {
	if len(algs) == 0 {
		algs = Algorithms[E]()
	}
	r := &Registry[E]{byName: &hashmap.HashMap{}}
	for _, a := range algs {
		r.Register(a)
	}
	return r
}

func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Register adds a, replacing any algorithm of the same name.
func (r *Registry[E]) Register(a Algorithm[E]) {
	key := normalize(a.Name)
	if _, ok := r.byName.Get(key); !ok {
		r.names = append(r.names, key)
	}
	r.byName.Set(key, a)
}

func (r *Registry[E]) Names() []string {
	return append([]string(nil), r.names...)
}

// Lookup resolves names case-insensitively, keeping their order.
func (r *Registry[E]) Lookup(names ...string) ([]Algorithm[E], error) {
	algs := make([]Algorithm[E], 0, len(names))
	for _, name := range names {
		v, ok := r.byName.Get(normalize(name))
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q (known: %s)", name, strings.Join(r.names, ", "))
		}
		algs = append(algs, v.(Algorithm[E]))
	}
	return algs, nil
}
