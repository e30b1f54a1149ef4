package obj

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access into nested map[string]any
//
// Example map:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	GetPath(m, "user.address.city") → "London", true
//	SetPath(m, "user.age", 30)
//	HasPath(m, "user.name")         → true
// ─────────────────────────────────────────────────────────────────────────────

// GetPath reads the value at the dot-separated path, descending through
// nested map[string]any levels. The second return value reports whether the
// full path resolved.
func GetPath(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// SetPath writes value at the dot-separated path, creating intermediate
// map[string]any levels as needed. An intermediate value that is not a map
// is replaced by one.
func SetPath(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	SetPath(child, rest, value)
}

// HasPath reports whether the dot-separated path resolves in m.
func HasPath(m map[string]any, path string) bool {
	_, ok := GetPath(m, path)
	return ok
}

// ForgetPath removes the entry at the dot-separated path.
// Intermediate maps left empty are not cleaned up.
func ForgetPath(m map[string]any, path string) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(m, path)
		return
	}
	if child, ok := m[seg].(map[string]any); ok {
		ForgetPath(child, rest)
	}
}

// Dot flattens a nested map[string]any into a single-level map keyed by
// dot-separated paths. It is the map analogue of arr.Flatten.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}}) // → {"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map back into a nested map[string]any.
// It is the inverse of [Dot] for maps whose leaf values are not maps.
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for path, val := range m {
		SetPath(out, path, val)
	}
	return out
}
