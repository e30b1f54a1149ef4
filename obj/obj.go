package obj

// ─────────────────────────────────────────────────────────────────────────────
// Shallow merges
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of each src into dst, in order, so later sources
// overwrite earlier ones and all of them overwrite dst. It mutates and
// returns dst; a nil dst is replaced by a fresh map.
func Extend[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults fills dst with entries from each src only where dst does not
// already have the key; existing entries are never overwritten, and earlier
// sources win over later ones. It mutates and returns dst; a nil dst is
// replaced by a fresh map.
func Defaults[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}

// ─────────────────────────────────────────────────────────────────────────────
// Extraction & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Has reports whether m contains key.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Pick returns a new map containing only the given keys of m.
// Keys absent from m are ignored.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Clone returns a shallow copy of m. A nil map clones to an empty map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Invert returns a map from the values of m to their keys.
// When values collide, which key survives is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// MapValues applies fn to every value of m and returns a new map with the
// same keys.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}
