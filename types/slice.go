package types

// Swap exchanges the elements at positions i and j.
func Swap[E any](s []E, i, j int) { s[i], s[j] = s[j], s[i] }

// ReverseSlice reverses s in place.
func ReverseSlice[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		Swap(s, i, j)
	}
}

// IsSorted reports whether s is non-decreasing under cmp.
func IsSorted[E any](s []E, cmp Comparator[E]) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
