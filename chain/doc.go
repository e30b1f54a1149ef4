// Package chain provides a fluent, chainable wrapper around the helpers in
// the arr package.
//
// # Creating a chain
//
//	c := chain.New(1, 2, 3, 4, 5)
//	c := chain.From([]string{"a", "b", "c"})
//
// # Method chaining
//
//	result := chain.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    SortBy(func(n int) float64 { return float64(-n) }).
//	    Value() // → [6 4 2]
//
// Every transform returns a new Chain, leaving the original untouched, so
// chain values are safe to share across goroutines without locking.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions
// ([Map], [Reduce], [Pluck]), along with operations that need a comparable
// element type ([Uniq]).
package chain
