// Package arr provides standalone generic helper functions for Go slices:
// element access, iteration, filtering, mapping, reduction, membership tests,
// set-like operations, and structural transforms (flatten, zip).
//
// # Iteration helpers
//
// All helpers are generic and operate on plain []T values — no wrapper type
// required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := arr.Pluck(users, func(u User) string { return u.Name })
//	sum   := arr.Reduce([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n }, 0)
//
// Transforms never mutate their input; functions that reorder or filter
// return fresh slices.
//
// # Reduction
//
// [Reduce] folds left-to-right with an explicit initial accumulator and may
// change the element type. [Fold] is the initial-less variant: it seeds the
// accumulation with the zero value of T (0 for numeric T, "" for strings),
// which keeps the omitted-initial case type-honest instead of guessing.
//
// # Structural transforms
//
// [Flatten] collapses arbitrarily nested []any structures depth-first,
// left-to-right, using an explicit work stack so the input's nesting depth
// never translates into call-stack depth. [Zip] interleaves any number of
// slices positionally; rows extend to the LONGEST input and missing positions
// are padded with fn.None rather than truncated:
//
//	rows := arr.Zip([]string{"a", "b", "c"}, []string{"x"})
//	// row 0: [Some(a) Some(x)]
//	// row 1: [Some(b) None]
//	// row 2: [Some(c) None]
//
// For the chainable surface over the same operations, see the chain package.
package arr
