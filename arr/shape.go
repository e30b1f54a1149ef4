package arr

import (
	"math/rand"
	"sort"

	"github.com/Ladrillo/utilities/fn"
)

// ─────────────────────────────────────────────────────────────────────────────
// Structural transforms
// ─────────────────────────────────────────────────────────────────────────────

// flatFrame is a cursor into one level of a nested []any during [Flatten].
type flatFrame struct {
	items []any
	next  int
}

// Flatten collapses an arbitrarily nested []any structure into a single flat
// slice of its scalar leaves, depth-first and left to right. A non-slice
// input flattens to a singleton. The input is never mutated.
//
//	arr.Flatten([]any{1, []any{2, 3, []any{4}}, 5}) // → [1 2 3 4 5]
//
// The walk uses an explicit work stack, so call-stack usage stays constant
// regardless of how deeply the input nests. Cyclic structures are a caller
// contract violation: Flatten does not terminate on them.
func Flatten(input any) []any {
	items, ok := input.([]any)
	if !ok {
		return []any{input}
	}

	out := make([]any, 0, len(items))
	stack := []flatFrame{{items: items}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.items[top.next]
		top.next++
		if nested, ok := v.([]any); ok {
			stack = append(stack, flatFrame{items: nested})
			continue
		}
		out = append(out, v)
	}
	return out
}

// Collapse flattens a slice of slices into a single flat slice (one level
// only). It is the typed counterpart of [Flatten] for regularly-shaped input.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Zip interleaves any number of slices positionally: row i holds each input's
// element at index i, in argument order. Rows extend to the length of the
// LONGEST input; positions past the end of a shorter input are padded with
// fn.None rather than truncated, so no data from longer inputs is lost.
// With zero inputs the result is empty.
//
//	arr.Zip([]string{"a", "b", "c", "d"}, []string{"1", "2", "3"})
//	// → 4 rows; row 3 is [Some(d) None]
func Zip[T any](slices ...[]T) [][]fn.Option[T] {
	longest := 0
	for _, s := range slices {
		if len(s) > longest {
			longest = len(s)
		}
	}
	out := make([][]fn.Option[T], longest)
	for i := range out {
		row := make([]fn.Option[T], len(slices))
		for j, s := range slices {
			if i < len(s) {
				row[j] = fn.Some(s[i])
			} else {
				row[j] = fn.None[T]()
			}
		}
		out[i] = row
	}
	return out
}

// Unzip is the inverse of [Zip]: it transposes rows back into per-column
// slices, so column j of the result collects element j of every row, in row
// order. Ragged rows are tolerated: positions a short row does not cover are
// filled with fn.None. With zero rows the result is empty.
//
//	arr.Unzip(arr.Zip(xs, ys)) // → [column of xs, column of ys], None-padded
func Unzip[T any](rows [][]fn.Option[T]) [][]fn.Option[T] {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	out := make([][]fn.Option[T], columns)
	for j := range out {
		col := make([]fn.Option[T], len(rows))
		for i, row := range rows {
			if j < len(row) {
				col[i] = row[j]
			} else {
				col[i] = fn.None[T]()
			}
		}
		out[j] = col
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty [][]T if size <= 0 or items is empty.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Partition splits items into two slices: those satisfying fn and the rest.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of items sorted in ascending order by the float64
// value extracted by fn.
func SortBy[T any](items []T, fn func(T) float64) []T {
	return Sort(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
