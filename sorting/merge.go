package sorting

import "github.com/kabu1204/go-sortbench/types"

// MergeSort sorts s[left..right] into non-decreasing order. Equal elements
// keep their relative order.
func MergeSort[E any](s []E, left, right int, cmp types.Comparator[E]) {
	mustRange(len(s), left, right)
	mergeSort(s, left, right, cmp)
}

func mergeSort[E any](s []E, left, right int, cmp types.Comparator[E]) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(s, left, mid, cmp)
	mergeSort(s, mid+1, right, cmp)
	merge(s, left, mid, right, cmp)
}

// Merge combines the sorted runs s[left..mid] and s[mid+1..right] into one
// sorted run. On ties the element from the left run goes first.
func Merge[E any](s []E, left, mid, right int, cmp types.Comparator[E]) {
	mustRange(len(s), left, right)
	if mid < left || mid > right {
		panic(&RangeError{Left: left, Right: mid, Len: len(s)})
	}
	merge(s, left, mid, right, cmp)
}

func merge[E any](s []E, left, mid, right int, cmp types.Comparator[E]) {
	buf := make([]E, 0, right-left+1)
	i, j := left, mid+1
	for i <= mid && j <= right {
		if cmp(s[i], s[j]) <= 0 {
			buf = append(buf, s[i])
			i++
		} else {
			buf = append(buf, s[j])
			j++
		}
	}
	buf = append(buf, s[i:mid+1]...)
	buf = append(buf, s[j:right+1]...)
	copy(s[left:right+1], buf)
}
