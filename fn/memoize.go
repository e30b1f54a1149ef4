package fn

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Memoize wraps a pure single-argument function with a lookup table so that
// each distinct argument is computed at most once.
//
// The table is private to the wrapper and keyed by the argument itself, which
// is why K must be comparable. Entries are added and never evicted: under an
// unbounded stream of distinct keys the table grows without bound, which is
// the caller's responsibility to keep in check.
//
// The wrapper is safe for concurrent use. The table lock is held across the
// computation, so for a previously unseen key exactly one goroutine runs f
// and every other caller waits for the stored result; f never runs twice for
// the same key. A consequence is that calls for different cold keys serialise
// — acceptable for the cheap pure functions this is meant for.
//
// A panic raised by f propagates to the caller unmodified and leaves no entry
// behind. Memoize panics immediately when f is nil.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	if f == nil {
		panic("fn: Memoize called with a nil function")
	}

	var mu sync.Mutex
	memo := make(map[K]V)
	return func(key K) V {
		mu.Lock()
		defer mu.Unlock()

		if v, ok := memo[key]; ok {
			return v
		}
		v := f(key)
		memo[key] = v
		return v
	}
}

// MemoizeBy is [Memoize] for argument types that are not comparable.
// key derives the table key from the argument; arguments mapping to the same
// key are treated as identical, so key must be injective over the inputs the
// caller intends to distinguish.
//
//	area := fn.MemoizeBy(computeArea, func(p Polygon) uint64 {
//	    return fn.Fingerprint(p.Vertices)
//	})
func MemoizeBy[T any, K comparable, V any](f func(T) V, key func(T) K) func(T) V {
	if f == nil || key == nil {
		panic("fn: MemoizeBy called with a nil function")
	}

	var mu sync.Mutex
	memo := make(map[K]V)
	return func(arg T) V {
		mu.Lock()
		defer mu.Unlock()

		k := key(arg)
		if v, ok := memo[k]; ok {
			return v
		}
		v := f(arg)
		memo[k] = v
		return v
	}
}

// Fingerprint hashes the Go-syntax representation of v to a stable uint64,
// for use as a [MemoizeBy] key when the argument itself is not comparable.
// The hash is xxhash, not cryptographic; collisions are improbable but not
// impossible, so do not use it where adversarial inputs are a concern.
func Fingerprint(v any) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%#v", v))
}
