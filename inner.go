package view

// Inner is a Core that owns its child directly. Access always succeeds
// and extraction always succeeds, since nothing else can be holding the
// child. It is the storage strategy behind Wrap and behind the code the
// viewgen tool generates.
type Inner[V View] struct {
	child V
}

// NewInner creates an owning core around child.
func NewInner[V View](child V) *Inner[V] {
	return &Inner[V]{child: child}
}

// WithView implements Core. It always succeeds.
func (in *Inner[V]) WithView(f func(v View)) bool {
	f(in.child)
	return true
}

// WithViewMut implements Core. It always succeeds.
func (in *Inner[V]) WithViewMut(f func(v View)) bool {
	f(in.child)
	return true
}

// TakeView implements Extractor. It always succeeds.
func (in *Inner[V]) TakeView() (View, bool) {
	return in.child, true
}

// Get returns the child with its concrete type.
func (in *Inner[V]) Get() V {
	return in.child
}

// Ref returns a pointer to the stored child, for callers that need to
// replace it in place.
func (in *Inner[V]) Ref() *V {
	return &in.child
}

var (
	_ Core      = (*Inner[Base])(nil)
	_ Extractor = (*Inner[Base])(nil)
)

// Wrapper bundles direct child ownership with default forwarding. A
// concrete wrapper type embeds it, gets the whole View contract for
// free, and overrides the operations it customizes:
//
//	type Shaded struct {
//		view.Wrapper[view.View]
//	}
//
//	func NewShaded(child view.View) *Shaded {
//		return &Shaded{Wrapper: view.Wrap(child)}
//	}
//
//	func (s *Shaded) Draw(p view.Printer) { ... }
type Wrapper[V View] struct {
	Forward
	inner *Inner[V]
}

// Wrap creates a wrapper owning child, forwarding every View operation
// to it.
func Wrap[V View](child V) Wrapper[V] {
	in := NewInner(child)
	return Wrapper[V]{Forward: NewForward(in), inner: in}
}

// Inner returns the wrapped child with its concrete type, bypassing the
// View contract entirely.
func (w *Wrapper[V]) Inner() V {
	return w.inner.Get()
}

// InnerRef returns a pointer to the wrapped child.
func (w *Wrapper[V]) InnerRef() *V {
	return w.inner.Ref()
}
