package chain

import "errors"

// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no item
// satisfies the predicate.
var ErrNoMatchingItems = errors.New("chain: no items match the given condition")
