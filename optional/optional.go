package optional

type Optional[T any] interface {
	Get() T
	IsNone() bool
}

type None[T any] struct{}

func (o None[T]) Get() T {
	var zero T
	return zero
}
func (o None[T]) IsNone() bool { return true }

type Some[T any] struct {
	Value T
}

func (o Some[T]) Get() T       { return o.Value }
func (o Some[T]) IsNone() bool { return false }
func (o Some[T]) Some(receiver *T) {
	*receiver = o.Value
}

// Of wraps v as Some.
func Of[T any](v T) Optional[T] { return Some[T]{Value: v} }

// Empty returns None of T.
func Empty[T any]() Optional[T] { return None[T]{} }

// OrElse returns the held value, or def when o is None.
func OrElse[T any](o Optional[T], def T) T {
	if o == nil || o.IsNone() {
		return def
	}
	return o.Get()
}
