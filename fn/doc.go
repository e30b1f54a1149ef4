// Package fn provides function combinators and call-semantics wrappers:
// composition helpers, an [Option] type for values that may be absent, and
// wrappers that change how a function may be invoked ([Once], [Memoize],
// [Delay]).
//
// # Wrappers own their state
//
// [Once] and [Memoize] return closures that privately own their invocation
// state (a fired flag plus the cached result, or a key→result table). The
// state is reachable only through the returned function; two wrappers around
// the same underlying function never share state:
//
//	warmUp := fn.Once(loadConfig)
//	cfg := warmUp() // loadConfig runs
//	cfg = warmUp()  // cached, loadConfig does not run again
//
//	fib := fn.Memoize(slowFib)
//	fib(40) // computed
//	fib(40) // looked up
//
// Both wrappers are safe for concurrent use: the underlying function runs at
// most once per key even when goroutines race on a cold entry.
//
// # Composition
//
// [Comp], [Iden], [Const] and [Curry] build small closures on the fly for use
// with the higher-order helpers in the arr and chain packages:
//
//	double := func(n int) int { return n * 2 }
//	show := fn.Comp(double, strconv.Itoa) // func(int) string
//
//	add := fn.Curry(func(a, b int) int { return a + b })
//	add1 := add(1) // func(int) int
//
// # Absent values
//
// [Option] represents "a value or nothing" without overloading a zero value.
// It is the row element type produced by arr.Zip, where short columns are
// padded with [None].
package fn
