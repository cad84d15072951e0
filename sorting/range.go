package sorting

import "fmt"

// RangeError describes an index range that does not fit the slice it was
// applied to. Entry points panic with it; CheckRange and CheckSize return it.
type RangeError struct {
	Left, Right int
	Len         int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sorting: range [%d, %d] out of bounds for length %d", e.Left, e.Right, e.Len)
}

// CheckRange validates the inclusive range [left, right] against a slice of
// length n. An empty range (left > right) is always valid.
func CheckRange(n, left, right int) error {
	if left > right {
		return nil
	}
	if left < 0 || right >= n {
		return &RangeError{Left: left, Right: right, Len: n}
	}
	return nil
}

// CheckSize validates a leading element count against a slice of length n.
func CheckSize(n, size int) error {
	if size < 0 || size > n {
		return &RangeError{Left: 0, Right: size - 1, Len: n}
	}
	return nil
}

func mustRange(n, left, right int) {
	if err := CheckRange(n, left, right); err != nil {
		panic(err)
	}
}

func mustSize(n, size int) {
	if err := CheckSize(n, size); err != nil {
		panic(err)
	}
}
