package chain

import "github.com/Ladrillo/utilities/arr"

// This file contains the package-level functions for operations a method
// cannot express: transforms that change the element type, and operations
// that need a comparable element type.

// Map applies fn to every item and returns a new Chain[U].
func Map[T, U any](c Chain[T], fn func(T, int) U) Chain[U] {
	return Chain[U]{items: arr.Map(c.items, fn)}
}

// Reduce folds the chain left-to-right into a single value of type U.
func Reduce[T, U any](c Chain[T], fn func(U, T, int) U, initial U) U {
	return arr.Reduce(c.items, fn, initial)
}

// Pluck extracts a value of type U from every item.
func Pluck[T, U any](c Chain[T], fn func(T) U) Chain[U] {
	return Chain[U]{items: arr.Pluck(c.items, fn)}
}

// Uniq returns a new chain with duplicate values removed, keeping the first
// occurrence of each.
func Uniq[T comparable](c Chain[T]) Chain[T] {
	return Chain[T]{items: arr.Uniq(c.items)}
}
