package view

import "github.com/fenwick/go-view/internal/debug"

// Lender is a wrapper whose child can be lent out temporarily, for
// example to an overlay that needs to drive the child directly while it
// is on screen. While the child is on loan, every forwarded operation
// falls back to its documented default: the lender draws nothing,
// ignores events, reports zero size, and asks for a relayout. Callers
// never observe an error from the loan; the wrapper simply goes inert
// until the child comes back.
type Lender struct {
	Forward
	slot *Slot[View]
}

// NewLender creates a lender owning child.
func NewLender(child View) *Lender {
	l := &Lender{slot: NewSlot[View](child)}
	l.Forward = NewForward(l.slot)
	return l
}

// Lend checks the child out. It fails if the child is already on loan.
func (l *Lender) Lend() (View, bool) {
	v, ok := l.slot.Take()
	debug.Log("Lender.Lend: ok=%v", ok)
	return v, ok
}

// Return gives a child back, making the lender live again.
func (l *Lender) Return(child View) {
	l.slot.Put(child)
}

// OnLoan reports whether the child is currently lent out.
func (l *Lender) OnLoan() bool {
	return l.slot.Taken()
}

var _ View = (*Lender)(nil)
