// Package obj provides helper functions for Go maps: shallow merges
// ([Extend], [Defaults]), key/value extraction, filtering ([Pick], [Omit]),
// and dot-notation access into nested map[string]any structures.
//
// # Merging
//
// [Extend] copies source entries into a destination, later sources winning;
// [Defaults] fills in only the keys the destination is missing:
//
//	cfg := obj.Extend(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
//	// → {"a": 2, "b": 3}
//
//	cfg = obj.Defaults(map[string]int{"a": 1}, map[string]int{"a": 9, "b": 3})
//	// → {"a": 1, "b": 3}
//
// Both mutate and return their destination; pass nil to start fresh.
//
// # Dot-notation access
//
// For deeply nested map[string]any values, dot-separated key paths read and
// write without manual type assertions at every level:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	v, ok := obj.GetPath(m, "user.name") // "Alice", true
//	obj.SetPath(m, "user.address.city", "London")
package obj
