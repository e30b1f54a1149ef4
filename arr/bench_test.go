package arr_test

import (
	"testing"

	"github.com/Ladrillo/utilities/arr"
)

// makeInts creates a []int of size n for benchmarks.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkReduce(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Reduce(items, func(acc, n, _ int) int { return acc + n }, 0)
	}
}

func BenchmarkFlatten(b *testing.B) {
	nested := make([]any, 0, 1_000)
	for i := 0; i < 1_000; i++ {
		nested = append(nested, []any{i, []any{i, i}})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Flatten(any(nested))
	}
}

func BenchmarkZip(b *testing.B) {
	xs := makeInts(10_000)
	ys := makeInts(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Zip(xs, ys)
	}
}

func BenchmarkUniq(b *testing.B) {
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Uniq(items)
	}
}
