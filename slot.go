package view

// Slot is a Core whose child can be checked out for exclusive use
// outside the forwarding path. While the child is out, both accessors
// report it unavailable and forwarded operations degrade to their
// documented defaults. This is the explicit runtime guard that stands
// in for exclusive borrows when a wrapper needs to re-enter itself.
//
// Slot is not a concurrency primitive. It guards nested access within a
// single call stack; the tree is only ever driven from one goroutine.
type Slot[V View] struct {
	child V
	taken bool
}

// NewSlot creates a slot owning child.
func NewSlot[V View](child V) *Slot[V] {
	return &Slot[V]{child: child}
}

// WithView implements Core. It fails while the child is checked out,
// including the case where the outer holder is an in-progress accessor
// call further up the same stack.
func (s *Slot[V]) WithView(f func(v View)) bool {
	if s.taken {
		return false
	}
	s.taken = true
	defer func() { s.taken = false }()
	f(s.child)
	return true
}

// WithViewMut implements Core. It fails while the child is checked out.
func (s *Slot[V]) WithViewMut(f func(v View)) bool {
	if s.taken {
		return false
	}
	s.taken = true
	defer func() { s.taken = false }()
	f(s.child)
	return true
}

// Take checks the child out. It fails if the child is already out.
func (s *Slot[V]) Take() (V, bool) {
	if s.taken {
		var zero V
		return zero, false
	}
	s.taken = true
	return s.child, true
}

// Put returns a child to the slot, making it available again.
func (s *Slot[V]) Put(child V) {
	s.child = child
	s.taken = false
}

// Taken reports whether the child is currently checked out.
func (s *Slot[V]) Taken() bool {
	return s.taken
}

// TakeView implements Extractor. Extraction fails while the child is
// checked out; afterwards the slot stays empty.
func (s *Slot[V]) TakeView() (View, bool) {
	v, ok := s.Take()
	if !ok {
		return nil, false
	}
	return v, true
}

var (
	_ Core      = (*Slot[Base])(nil)
	_ Extractor = (*Slot[Base])(nil)
)
