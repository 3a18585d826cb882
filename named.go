package view

import "github.com/fenwick/go-view/internal/debug"

// Named attaches a stable name to a view so it can be found by
// ByName selectors. Everything except tree search and focus transfer is
// plain forwarding, so stacking Named around other wrappers keeps the
// tree searchable as if it were flat.
type Named struct {
	Wrapper[View]
	name string
}

// NewNamed wraps child under the given name.
func NewNamed(name string, child View) *Named {
	n := &Named{name: name}
	n.Wrapper = Wrap(child)
	return n
}

// Name returns the view's name.
func (n *Named) Name() string {
	return n.name
}

// CallOnAny visits the wrapped child if the selector matches this name,
// then recurses so deeper matches are still found. Each matching view is
// visited exactly once, in depth-first order.
func (n *Named) CallOnAny(sel Selector, fn func(View)) {
	if sel.MatchesName(n.name) {
		fn(n.Inner())
	}
	n.Wrapper.CallOnAny(sel, fn)
}

// FocusView moves focus to the wrapped child if the selector matches
// this name, and forwards the search otherwise.
func (n *Named) FocusView(sel Selector) bool {
	if sel.MatchesName(n.name) {
		took := n.Wrapper.TakeFocus(DirNone)
		debug.Log("Named.FocusView: %q matched, focus taken=%v", n.name, took)
		return took
	}
	return n.Wrapper.FocusView(sel)
}

var _ View = (*Named)(nil)
