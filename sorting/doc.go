// Package sorting implements five comparison sorts over any element type
// ordered by a types.Comparator.
//
// MergeSort, QuickSort and HeapSort take an inclusive index range
// [left, right]; left > right is an empty range. BubbleSort and
// TranspositionSort take the number of leading elements to sort and return
// how many pairwise comparisons they made.
//
// MergeSort, BubbleSort and TranspositionSort are stable. QuickSort and
// HeapSort are not.
//
// Every function sorts in place on the calling goroutine. The caller owns
// the slice for the duration of the call.
package sorting
