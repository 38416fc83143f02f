package coinfolio

// Optional holds a value that may be absent.
// Its zero value is an absent value.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.ok }

// OrElse returns the value if present, v otherwise.
func (o Optional[T]) OrElse(v T) T {
	if o.ok {
		return o.value
	}
	return v
}

// OrElseGet returns the value if present, otherwise the result of f.
// f is only called when the value is absent.
func (o Optional[T]) OrElseGet(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}
