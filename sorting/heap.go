package sorting

import "github.com/kabu1204/go-sortbench/types"

// HeapSort sorts s[left..right] in place with a binary max-heap.
//
// The heap uses local indices: node k lives at s[left+k] and its children are
// 2k+1 and 2k+2.
func HeapSort[E any](s []E, left, right int, cmp types.Comparator[E]) {
	mustRange(len(s), left, right)
	n := right - left + 1
	if n < 2 {
		return
	}

	for k := n/2 - 1; k >= 0; k-- {
		heapify(s, left, k, n-1, cmp)
	}

	for last := n - 1; last > 0; last-- {
		types.Swap(s, left, left+last)
		heapify(s, left, 0, last-1, cmp)
	}
}

// Heapify sifts local node root down the heap held in s[base..base+last]
// until it is no smaller than either child.
func Heapify[E any](s []E, base, root, last int, cmp types.Comparator[E]) {
	mustRange(len(s), base, base+last)
	if root < 0 || root > last {
		panic(&RangeError{Left: base + root, Right: base + last, Len: len(s)})
	}
	heapify(s, base, root, last, cmp)
}

func heapify[E any](s []E, base, root, last int, cmp types.Comparator[E]) {
	largest := root
	l, r := 2*root+1, 2*root+2

	if l <= last && cmp(s[base+l], s[base+largest]) > 0 {
		largest = l
	}
	if r <= last && cmp(s[base+r], s[base+largest]) > 0 {
		largest = r
	}

	if largest != root {
		types.Swap(s, base+root, base+largest)
		heapify(s, base, largest, last, cmp)
	}
}
