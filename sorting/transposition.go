package sorting

import "github.com/kabu1204/go-sortbench/types"

// TranspositionSort sorts the first size elements of s with odd-even
// transposition and returns the number of comparisons made.
//
// A nil slice or size <= 1 is already sorted and costs nothing, whatever the
// slice length.
func TranspositionSort[E any](s []E, size int, cmp types.Comparator[E]) int {
	if s == nil || size <= 1 {
		return 0
	}
	mustSize(len(s), size)

	comparisons := 0
	for swapped := true; swapped; {
		odd, oddSwapped := transpose(s, 1, size, cmp)
		even, evenSwapped := transpose(s, 0, size, cmp)
		comparisons += odd + even
		swapped = oddSwapped || evenSwapped
	}
	return comparisons
}

// transpose compares the pairs (start, start+1), (start+2, start+3), ...
// below size and swaps those out of order.
func transpose[E any](s []E, start, size int, cmp types.Comparator[E]) (comparisons int, swapped bool) {
	for i := start; i <= size-2; i += 2 {
		comparisons++
		if cmp(s[i], s[i+1]) > 0 {
			types.Swap(s, i, i+1)
			swapped = true
		}
	}
	return comparisons, swapped
}
