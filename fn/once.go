package fn

import "sync"

// Once wraps a zero-argument function so that it executes at most once.
//
// The first call to the returned wrapper invokes f and caches its result;
// every later call returns that same cached value without invoking f again.
// The fired flag and the cached result are private to the wrapper: two
// wrappers around the same f are fully independent.
//
// The wrapper is safe for concurrent use. When goroutines race on the first
// call, exactly one of them executes f and the others block until the result
// is available, so all callers observe an identical value.
//
// A panic raised by f propagates to the first caller unmodified. The wrapper
// still counts as fired: later calls do not run f again and return the zero
// value of T, since no result was ever produced. Invoke-at-most-once holds
// even on that path. Once panics immediately when f is nil.
func Once[T any](f func() T) func() T {
	if f == nil {
		panic("fn: Once called with a nil function")
	}

	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() { result = f() })
		return result
	}
}
