package types

type (
	T interface{}

	Slice []interface{}

	Predicate func(interface{}) bool

	Function func(interface{}) interface{}

	Consumer func(interface{})

	KeyFunction func(interface{}) string

	// Comparator is a three-way total order: negative when a sorts before b,
	// zero when they are equal, positive otherwise.
	Comparator[E any] func(a, b E) int
)
