package arr

// ─────────────────────────────────────────────────────────────────────────────
// Set-like operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, preserving the first
// occurrence of each value (requires comparable T).
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqBy returns the elements with duplicates removed using a key function.
// Useful for non-comparable element types or custom identity.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns the values present in every one of the given slices,
// in the order they appear in the first slice, without duplicates.
// With zero inputs the result is empty.
func Intersection[T comparable](slices ...[]T) []T {
	if len(slices) == 0 {
		return []T{}
	}
	out := Uniq(slices[0])
	for _, other := range slices[1:] {
		set := make(map[T]struct{}, len(other))
		for _, v := range other {
			set[v] = struct{}{}
		}
		out = Filter(out, func(v T, _ int) bool {
			_, found := set[v]
			return found
		})
	}
	return out
}

// Difference returns the values of items that are absent from all of the
// other slices, preserving order and duplicates of items.
func Difference[T comparable](items []T, others ...[]T) []T {
	set := make(map[T]struct{})
	for _, other := range others {
		for _, v := range other {
			set[v] = struct{}{}
		}
	}
	return Filter(items, func(v T, _ int) bool {
		_, found := set[v]
		return !found
	})
}
