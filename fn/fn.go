package fn

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
// Handy for building one-off closures to feed the higher-order helpers in
// the arr and chain packages.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument unchanged. It is the identity of [Comp] and is
// useful as a do-nothing transform argument.
func Iden[A any](a A) A { return a }

// Const returns a function that ignores its argument and always produces a.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// Curry converts a two-argument function into a chain of single-argument
// functions, so it can be partially applied:
//
//	add := fn.Curry(func(a, b int) int { return a + b })
//	inc := add(1)
//	inc(41) // 42
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}
