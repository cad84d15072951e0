package sorting

import (
	"slices"
	"testing"
)

func benchmarkSort(b *testing.B, n int, f sortFunc) {
	data := generateInts(n, n)
	work := make([]int, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, data)
		f(work)
	}
}

func benchmarkSorted(b *testing.B, n int, f sortFunc) {
	data := generateInts(n, n)
	slices.Sort(data)
	work := make([]int, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, data)
		f(work)
	}
}

func BenchmarkMergeSort_1000(b *testing.B)         { benchmarkSort(b, 1000, sorters["merge"]) }
func BenchmarkQuickSort_1000(b *testing.B)         { benchmarkSort(b, 1000, sorters["quick"]) }
func BenchmarkHeapSort_1000(b *testing.B)          { benchmarkSort(b, 1000, sorters["heap"]) }
func BenchmarkBubbleSort_1000(b *testing.B)        { benchmarkSort(b, 1000, sorters["bubble"]) }
func BenchmarkTranspositionSort_1000(b *testing.B) { benchmarkSort(b, 1000, sorters["transposition"]) }

func BenchmarkQuickSort_Sorted_10000(b *testing.B)  { benchmarkSorted(b, 10000, sorters["quick"]) }
func BenchmarkBubbleSort_Sorted_10000(b *testing.B) { benchmarkSorted(b, 10000, sorters["bubble"]) }
