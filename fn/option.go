package fn

import "fmt"

// Option holds either a value of type T or nothing at all.
//
// It exists for positions where "no value" must stay distinguishable from a
// legitimate zero value — most notably the padding in rows produced by
// arr.Zip. The zero Option is None.
type Option[T any] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, valid: true}
}

// None returns the absent Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether o is absent.
func (o Option[T]) IsNone() bool { return !o.valid }

// Get returns the held value together with a presence flag,
// mirroring the comma-ok convention of map lookups.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

// UnwrapOr returns the held value, or def when o is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.valid {
		return def
	}
	return o.value
}

// String returns "Some(v)" or "None".
// It implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
