package types

import "golang.org/x/exp/constraints"

// Natural orders values by the < operator.
func Natural[E constraints.Ordered]() Comparator[E] {
	return func(a, b E) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Reverse flips cmp, so an ascending sort with it yields descending order.
func Reverse[E any](cmp Comparator[E]) Comparator[E] {
	return func(a, b E) int { return cmp(b, a) }
}

// Erase adapts cmp to the untyped elements flowing through a stream.
// Elements that are not of type E make the comparator panic.
func Erase[E any](cmp Comparator[E]) Comparator[interface{}] {
	return func(a, b interface{}) int { return cmp(a.(E), b.(E)) }
}
