package types

type Iterator interface {
	Next() (interface{}, bool)
	Len() int // for slices: a definite number; for readers: -1
}

type sliceIterator struct {
	index int
	slice Slice
}

func (s Slice) Iterator() Iterator {
	return &sliceIterator{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator) Next() (interface{}, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	return nil, false
}

func (it *sliceIterator) Len() int {
	return len(it.slice)
}
