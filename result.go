package view

// Result is the outcome of dispatching an event to a view.
//
// An ignored result means the event had no effect and the caller is free
// to offer it to a sibling or ancestor. A consumed result may carry a
// deferred callback: work that must run after the current dispatch pass
// has fully unwound, because it touches parts of the tree that are still
// borrowed mid-dispatch (closing a dialog from inside the dialog, for
// example). Drivers must invoke Callback after dispatch returns.
type Result struct {
	consumed bool
	callback func()
}

// Ignored returns the result for an event that produced no effect.
func Ignored() Result {
	return Result{}
}

// Consumed returns the result for a handled event with no deferred work.
func Consumed() Result {
	return Result{consumed: true}
}

// ConsumedWith returns a consumed result carrying a deferred callback.
func ConsumedWith(cb func()) Result {
	return Result{consumed: true, callback: cb}
}

// IsConsumed returns true if the event was handled.
func (r Result) IsConsumed() bool {
	return r.consumed
}

// Callback returns the deferred callback, or nil if there is none.
func (r Result) Callback() func() {
	return r.callback
}

// Process runs the deferred callback if one is attached. It is a
// convenience for drivers and is safe to call on any result.
func (r Result) Process() {
	if r.callback != nil {
		r.callback()
	}
}
