package stream

import (
	"reflect"
	"strings"

	"github.com/cornelk/hashmap"
	"github.com/kabu1204/go-sortbench/sorting"
	"github.com/kabu1204/go-sortbench/types"
)

// source <- Filter <- ... <- ToSlice

type Option func(*stream)
type wrapperType func(next *stream) []Option

type stream struct {
	source    types.Iterator
	prev      *stream
	wrapper   wrapperType
	consumer  types.Consumer
	settler   func(size int64)
	cleaner   func()
	canceller func() bool
	Name      string
}

func (s *stream) terminate() {
	head := s.setFunctor()
	it := s.source
	head.settler(int64(it.Len()))
	for !head.canceller() {
		v, ok := it.Next()
		if !ok {
			break
		}
		head.consumer(v)
	}
	head.cleaner()
}

func (s *stream) unwrap(next *stream) {
	for _, o := range s.wrapper(next) {
		o(s)
	}
}

func wrapConsumer(c types.Consumer) Option { return func(s *stream) { s.consumer = c } }
func wrapSettler(c func(int64)) Option     { return func(s *stream) { s.settler = c } }
func wrapCleaner(c func()) Option          { return func(s *stream) { s.cleaner = c } }
func wrapCanceller(c func() bool) Option   { return func(s *stream) { s.canceller = c } }

// setFunctor wires every stage to the one after it and returns the head.
func (s *stream) setFunctor() *stream {
	s.unwrap(&stream{
		source:    s.source,
		prev:      s,
		consumer:  func(_ interface{}) {},
		settler:   func(_ int64) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		Name:      "DummyTail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

// capacity turns a settled size into an allocation hint; sources of unknown
// length settle with -1.
func capacity(size int64) int {
	if size < 0 {
		return 0
	}
	return int(size)
}

func newStream(prev *stream, wrapper wrapperType, name string) *stream {
	return &stream{
		source:  prev.source,
		prev:    prev,
		wrapper: wrapper,
		Name:    name,
	}
}

func (s *stream) String() string {
	var names []string
	for p := s; p != nil; p = p.prev {
		names = append([]string{p.Name}, names...)
	}
	return strings.Join(names, " -> ")
}

// stateless

func (s *stream) Filter(p types.Predicate) Stream {
	wrapper := func(next *stream) []Option {
		consumer := func(e interface{}) {
			if p(e) {
				next.consumer(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Filter")
}

func (s *stream) Map(f types.Function) Stream {
	wrapper := func(next *stream) []Option {
		consumer := func(e interface{}) {
			next.consumer(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Map")
}

func (s *stream) Peek(f types.Consumer) Stream {
	wrapper := func(next *stream) []Option {
		consumer := func(e interface{}) {
			f(e)
			next.consumer(e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Peek")
}

// stateful

func (s *stream) Distinct(key types.KeyFunction) Stream {
	wrapper := func(next *stream) []Option {
		var seen *hashmap.HashMap
		settler := func(size int64) {
			seen = &hashmap.HashMap{}
			next.settler(size)
		}
		consumer := func(e interface{}) {
			if _, loaded := seen.GetOrInsert(key(e), struct{}{}); !loaded {
				next.consumer(e)
			}
		}
		cleaner := func() {
			seen = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Distinct")
}

// Sorted is a barrier: it buffers everything upstream produces, merge sorts
// the buffer, then replays it downstream.
func (s *stream) Sorted(cmp types.Comparator[interface{}]) Stream {
	wrapper := func(next *stream) []Option {
		var buffer types.Slice
		settler := func(size int64) {
			buffer = make(types.Slice, 0, capacity(size))
		}
		consumer := func(e interface{}) {
			buffer = append(buffer, e)
		}
		cleaner := func() {
			sorting.MergeSort(buffer, 0, len(buffer)-1, cmp)
			next.settler(int64(len(buffer)))
			for _, e := range buffer {
				if next.canceller() {
					break
				}
				next.consumer(e)
			}
			buffer = nil
			next.cleaner()
		}
		canceller := func() bool { return false }
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCleaner(cleaner), wrapCanceller(canceller))
	}
	return newStream(s, wrapper, "Sorted")
}

func (s *stream) Limit(n int64) Stream {
	wrapper := func(next *stream) []Option {
		var cnt int64
		settler := func(size int64) {
			cnt = 0
			if size < 0 || size > n {
				size = n
			}
			next.settler(size)
		}
		consumer := func(e interface{}) {
			if cnt < n {
				cnt++
				next.consumer(e)
			}
		}
		canceller := func() bool {
			return cnt >= n || next.canceller()
		}
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCanceller(canceller))
	}
	return newStream(s, wrapper, "Limit")
}

func (s *stream) Skip(n int64) Stream {
	wrapper := func(next *stream) []Option {
		var skipped int64
		settler := func(size int64) {
			skipped = 0
			if size >= 0 {
				if size -= n; size < 0 {
					size = 0
				}
			}
			next.settler(size)
		}
		consumer := func(e interface{}) {
			if skipped < n {
				skipped++
				return
			}
			next.consumer(e)
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Skip")
}

// termination

func (s *stream) ToSlice() types.Slice {
	slice := types.Slice{}
	wrapper := func(next *stream) []Option {
		settler := func(size int64) {
			slice = make(types.Slice, 0, capacity(size))
		}
		consumer := func(e interface{}) {
			slice = append(slice, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newStream(s, wrapper, "ToSlice").terminate()
	return slice
}

func (s *stream) ToSliceOf(typ reflect.Type) interface{} {
	sliceTyp := reflect.SliceOf(typ)
	slice := reflect.MakeSlice(sliceTyp, 0, 0)
	wrapper := func(next *stream) []Option {
		settler := func(size int64) {
			slice = reflect.MakeSlice(sliceTyp, 0, capacity(size))
		}
		consumer := func(e interface{}) {
			slice = reflect.Append(slice, reflect.ValueOf(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newStream(s, wrapper, "ToSliceOf").terminate()
	return slice.Interface()
}

func (s *stream) ForEach(f types.Consumer) {
	wrapper := func(next *stream) []Option {
		consumer := func(e interface{}) { f(e) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ForEach").terminate()
}

func (s *stream) Count() int64 {
	var cnt int64
	wrapper := func(next *stream) []Option {
		consumer := func(e interface{}) { cnt++ }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Count").terminate()
	return cnt
}
