package chain

import (
	"encoding/json"
	"fmt"

	"github.com/Ladrillo/utilities/arr"
)

// Chain is an immutable fluent wrapper around a slice of T. Every transform
// returns a new Chain; the wrapped slice is never mutated. Call [Chain.Value]
// to leave the chain and get a plain slice back.
type Chain[T any] struct {
	items []T
}

// New creates a Chain from a variadic list of items (copied).
func New[T any](items ...T) Chain[T] {
	return From(items)
}

// From creates a Chain from a slice (the slice is copied).
func From[T any](items []T) Chain[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return Chain[T]{items: dst}
}

// Value returns a copy of the wrapped slice, ending the chain.
func (c Chain[T]) Value() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items.
func (c Chain[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the chain holds no items.
func (c Chain[T]) IsEmpty() bool { return len(c.items) == 0 }

// Each calls fn(item, index) for every item and returns c for chaining.
func (c Chain[T]) Each(fn func(T, int)) Chain[T] {
	arr.Each(c.items, fn)
	return c
}

// Tap calls fn with the current items for side effects (logging, debugging)
// and returns c unchanged.
func (c Chain[T]) Tap(fn func([]T)) Chain[T] {
	fn(c.items)
	return c
}

// Map transforms every item with fn, keeping the element type.
// For a type-changing transform use the package-level [Map].
func (c Chain[T]) Map(fn func(T, int) T) Chain[T] {
	return Chain[T]{items: arr.Map(c.items, fn)}
}

// Filter keeps the items for which fn(item, index) returns true.
func (c Chain[T]) Filter(fn func(T, int) bool) Chain[T] {
	return Chain[T]{items: arr.Filter(c.items, fn)}
}

// Reject drops the items for which fn returns true.
func (c Chain[T]) Reject(fn func(T, int) bool) Chain[T] {
	return Chain[T]{items: arr.Reject(c.items, fn)}
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the chain is empty or nothing
// matches.
func (c Chain[T]) First(fns ...func(T) bool) (T, bool) {
	return arr.First(c.items, fns...)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c Chain[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := arr.First(c.items, fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
func (c Chain[T]) Last(fns ...func(T) bool) (T, bool) {
	return arr.Last(c.items, fns...)
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c Chain[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := arr.Last(c.items, fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (c Chain[T]) Contains(fn func(T) bool) bool {
	return arr.Contains(c.items, fn)
}

// Reverse returns a new chain with the items in reversed order.
func (c Chain[T]) Reverse() Chain[T] {
	return Chain[T]{items: arr.Reverse(c.items)}
}

// Take returns at most n items from the start.
func (c Chain[T]) Take(n int) Chain[T] {
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return From(c.items[:n])
}

// Skip returns a new chain without the first n items.
func (c Chain[T]) Skip(n int) Chain[T] {
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return From(c.items[n:])
}

// SortBy returns a new chain sorted in ascending order by the float64 value
// extracted by fn.
func (c Chain[T]) SortBy(fn func(T) float64) Chain[T] {
	return Chain[T]{items: arr.SortBy(c.items, fn)}
}

// Shuffle returns a new chain with the items in a randomly shuffled order.
func (c Chain[T]) Shuffle() Chain[T] {
	return Chain[T]{items: arr.Shuffle(c.items)}
}

// Partition splits the chain in two: items satisfying fn, and the rest.
func (c Chain[T]) Partition(fn func(T) bool) (Chain[T], Chain[T]) {
	pass, fail := arr.Partition(c.items, fn)
	return Chain[T]{items: pass}, Chain[T]{items: fail}
}

// String returns a JSON representation of the items.
// It implements [fmt.Stringer].
func (c Chain[T]) String() string {
	b, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}
