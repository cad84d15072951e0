package sorting

import "github.com/kabu1204/go-sortbench/types"

// QuickSort sorts s[left..right] in place around median-of-three pivots.
// It recurses into the smaller partition and loops over the larger one, so
// the stack stays O(log n) deep even when partitions are lopsided.
func QuickSort[E any](s []E, left, right int, cmp types.Comparator[E]) {
	mustRange(len(s), left, right)
	quickSort(s, left, right, cmp)
}

func quickSort[E any](s []E, left, right int, cmp types.Comparator[E]) {
	for left < right {
		p := partition(s, left, right, cmp)
		if p-left < right-p {
			quickSort(s, left, p-1, cmp)
			left = p + 1
		} else {
			quickSort(s, p+1, right, cmp)
			right = p - 1
		}
	}
}

// Partition rearranges s[left..right] around a median-of-three pivot and
// returns the pivot's final index. Elements before it are <= pivot, elements
// after it are > pivot. The range must not be empty.
func Partition[E any](s []E, left, right int, cmp types.Comparator[E]) int {
	if left > right {
		panic(&RangeError{Left: left, Right: right, Len: len(s)})
	}
	mustRange(len(s), left, right)
	return partition(s, left, right, cmp)
}

func partition[E any](s []E, left, right int, cmp types.Comparator[E]) int {
	types.Swap(s, medianOfThree(s, left, right, cmp), right)
	pivot := s[right]

	i := left - 1
	for j := left; j < right; j++ {
		if cmp(s[j], pivot) <= 0 {
			i++
			types.Swap(s, i, j)
		}
	}
	types.Swap(s, i+1, right)
	return i + 1
}

// medianOfThree returns whichever of left, mid and right holds the middle
// value of the three.
func medianOfThree[E any](s []E, left, right int, cmp types.Comparator[E]) int {
	mid := left + (right-left)/2
	first, middle, last := s[left], s[mid], s[right]

	if cmp(first, middle) < 0 {
		if cmp(middle, last) < 0 {
			return mid
		}
		if cmp(first, last) < 0 {
			return right
		}
		return left
	}
	if cmp(first, last) < 0 {
		return left
	}
	if cmp(middle, last) < 0 {
		return right
	}
	return mid
}
