package fn

import "time"

// Delay schedules f to run on its own goroutine after wait has elapsed.
//
// It returns a stop function that cancels the pending invocation; stop
// reports true when it prevented f from running and false when f already
// fired (or was already stopped). Stopping does not wait for a running f to
// return.
//
// Delay panics when f is nil.
func Delay(wait time.Duration, f func()) (stop func() bool) {
	if f == nil {
		panic("fn: Delay called with a nil function")
	}
	return time.AfterFunc(wait, f).Stop
}
