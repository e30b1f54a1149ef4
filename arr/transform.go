package arr

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & transformation
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, in order.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Invoke calls fn on every element and collects the results. It is the Go
// rendition of invoking a named method on each member of a collection: pass
// a method value or a closure that calls the method.
//
//	upper := arr.Invoke(words, strings.ToUpper)
func Invoke[T, U any](items []T, fn func(T) U) []U {
	return Pluck(items, fn)
}

// Reduce folds items into a single value of type U, strictly left to right:
// element 0 combines with initial, element 1 combines with that result, and
// so on. fn receives the accumulator so far, the element, and its index.
// An empty slice returns initial unchanged. The input is never mutated.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Fold is [Reduce] without an explicit initial accumulator: the accumulation
// is seeded with the zero value of T (0 for numeric T, "" for string T).
// Use Reduce when the zero value is not the identity of fn.
func Fold[T any](items []T, fn func(T, T, int) T) T {
	var zero T
	return Reduce(items, fn, zero)
}
