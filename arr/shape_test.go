package arr_test

import (
	"reflect"
	"testing"

	"github.com/Ladrillo/utilities/arr"
	"github.com/Ladrillo/utilities/fn"
)

func TestFlatten(t *testing.T) {
	got := arr.Flatten([]any{1, []any{2, 3, []any{4}}, 5})
	want := []any{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %v; want %v", got, want)
	}
}

func TestFlattenScalar(t *testing.T) {
	got := arr.Flatten("x")
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("Flatten scalar = %v; want [x]", got)
	}
}

func TestFlattenEmptyAndNested(t *testing.T) {
	if got := arr.Flatten([]any{}); len(got) != 0 {
		t.Fatalf("Flatten empty = %v; want []", got)
	}

	// Empty inner slices contribute nothing but do not break ordering.
	got := arr.Flatten([]any{[]any{}, 1, []any{[]any{}, 2}})
	want := []any{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %v; want %v", got, want)
	}
}

func TestFlattenDeepNesting(t *testing.T) {
	// Build 10000 levels of nesting around a single leaf; the iterative
	// walk must handle it without growing the call stack.
	v := any(42)
	for i := 0; i < 10000; i++ {
		v = []any{v}
	}
	got := arr.Flatten(v)
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("Flatten deep = %v; want [42]", got)
	}
}

func TestFlattenDoesNotMutateInput(t *testing.T) {
	inner := []any{2, 3}
	in := []any{1, inner}
	arr.Flatten(in)
	if !reflect.DeepEqual(in, []any{1, []any{2, 3}}) {
		t.Fatalf("Flatten mutated its input: %v", in)
	}
}

func TestZipLongest(t *testing.T) {
	rows := arr.Zip([]string{"a", "b", "c", "d"}, []string{"1", "2", "3"})
	if len(rows) != 4 {
		t.Fatalf("Zip produced %d rows; want 4 (length of longest input)", len(rows))
	}

	for i, want := range []string{"1", "2", "3"} {
		a, ok := rows[i][0].Get()
		if !ok {
			t.Fatalf("row %d col 0 is None", i)
		}
		b, ok := rows[i][1].Get()
		if !ok || b != want {
			t.Fatalf("row %d = [%v %v]; want [Some Some(%s)]", i, a, rows[i][1], want)
		}
	}

	if d, ok := rows[3][0].Get(); !ok || d != "d" {
		t.Fatalf("row 3 col 0 = %v; want Some(d)", rows[3][0])
	}
	if rows[3][1].IsSome() {
		t.Fatalf("row 3 col 1 = %v; want None padding", rows[3][1])
	}
}

func TestZipNoInputs(t *testing.T) {
	if rows := arr.Zip[int](); len(rows) != 0 {
		t.Fatalf("Zip() = %v; want empty", rows)
	}
}

func TestZipColumnOrder(t *testing.T) {
	rows := arr.Zip([]int{1}, []int{2}, []int{3})
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Fatalf("Zip shape = %v", rows)
	}
	for j, want := range []int{1, 2, 3} {
		if v, ok := rows[0][j].Get(); !ok || v != want {
			t.Fatalf("row 0 = %v; columns must mirror argument order", rows[0])
		}
	}
}

func TestUnzipInvertsZip(t *testing.T) {
	cols := arr.Unzip(arr.Zip([]string{"a", "b", "c"}, []string{"1", "2"}))
	if len(cols) != 2 {
		t.Fatalf("Unzip produced %d columns; want 2", len(cols))
	}

	for i, want := range []string{"a", "b", "c"} {
		if v, ok := cols[0][i].Get(); !ok || v != want {
			t.Fatalf("column 0 = %v; want [Some(a) Some(b) Some(c)]", cols[0])
		}
	}
	for i, want := range []string{"1", "2"} {
		if v, ok := cols[1][i].Get(); !ok || v != want {
			t.Fatalf("column 1 = %v", cols[1])
		}
	}
	// The padding Zip added for the shorter input survives the transpose.
	if cols[1][2].IsSome() {
		t.Fatalf("column 1 = %v; want None in position 2", cols[1])
	}
}

func TestUnzipRaggedAndEmpty(t *testing.T) {
	if cols := arr.Unzip[int](nil); len(cols) != 0 {
		t.Fatalf("Unzip(nil) = %v; want empty", cols)
	}

	cols := arr.Unzip([][]fn.Option[int]{
		{fn.Some(1), fn.Some(2)},
		{fn.Some(3)},
	})
	if len(cols) != 2 || len(cols[0]) != 2 || len(cols[1]) != 2 {
		t.Fatalf("Unzip shape = %v", cols)
	}
	if v, ok := cols[0][1].Get(); !ok || v != 3 {
		t.Fatalf("column 0 = %v; want [Some(1) Some(3)]", cols[0])
	}
	if cols[1][1].IsSome() {
		t.Fatalf("column 1 = %v; want None filling the ragged row", cols[1])
	}
}

func TestCollapse(t *testing.T) {
	got := arr.Collapse([][]int{{1, 2}, {3}, {}, {4}})
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collapse = %v; want %v", got, want)
	}
}

func TestReverse(t *testing.T) {
	got := arr.Reverse([]int{1, 2, 3})
	if got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("Reverse = %v", got)
	}
}

func TestChunk(t *testing.T) {
	got := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(got) != 3 || len(got[2]) != 1 || got[2][0] != 5 {
		t.Fatalf("Chunk = %v", got)
	}
	if got := arr.Chunk([]int{1}, 0); len(got) != 0 {
		t.Fatalf("Chunk size 0 = %v; want empty", got)
	}
}

func TestPartition(t *testing.T) {
	evens, odds := arr.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	if len(evens) != 2 || len(odds) != 3 {
		t.Fatalf("Partition = %v, %v", evens, odds)
	}
}

func TestSortBy(t *testing.T) {
	got := arr.SortBy([]int{3, 1, 2}, func(n int) float64 { return float64(n) })
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("SortBy = %v", got)
	}
}

func TestShufflePreservesElements(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	got := arr.Shuffle(in)
	if len(got) != len(in) {
		t.Fatalf("Shuffle changed length: %v", got)
	}
	for _, v := range in {
		if !arr.ContainsValue(got, v) {
			t.Fatalf("Shuffle lost element %d: %v", v, got)
		}
	}
	// Input must be left alone.
	if !reflect.DeepEqual(in, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Shuffle mutated its input: %v", in)
	}
}
