package sorting

import "github.com/kabu1204/go-sortbench/types"

// BubbleSort sorts the first size elements of s and returns the number of
// comparisons made. It stops after the first pass without a swap.
func BubbleSort[E any](s []E, size int, cmp types.Comparator[E]) int {
	mustSize(len(s), size)

	comparisons := 0
	for i := 0; i < size-1; i++ {
		swapped := false
		for j := 0; j < size-i-1; j++ {
			comparisons++
			if cmp(s[j], s[j+1]) > 0 {
				types.Swap(s, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return comparisons
}
