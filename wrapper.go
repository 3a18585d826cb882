package view

// Core is the guarded access pair a delegating wrapper exposes over its
// single child. WithView grants read access, WithViewMut grants mutating
// access. Both return true when the child was available and f ran exactly
// once, and false when the child is unavailable, which only happens when
// an outer call on the same wrapper is still holding it (reentrancy), not
// when the child is genuinely missing. On false, f is not called.
//
// All default forwarding in Forward goes through these two methods and
// nothing else, so swapping the storage strategy (direct ownership,
// check-out slot, lazy initialization) only means providing a different
// Core.
type Core interface {
	WithView(f func(v View)) bool
	WithViewMut(f func(v View)) bool
}

// Extractor is implemented by cores whose child can be taken out,
// dissolving the wrapper. TakeView returns false when extraction is
// structurally impossible; the core stays usable in that case.
type Extractor interface {
	TakeView() (View, bool)
}

// Forward implements the full View contract by delegating every
// operation to the child reached through a Core. Wrapper types embed it
// and override individual methods for custom behavior; an override on
// one operation leaves the default forwarding of all others intact.
//
// When the child is unavailable each operation degrades to a safe
// default: drawing and layout become no-ops, size negotiation reports
// zero, events are Ignored, focus is refused, searches match nothing.
// NeedsRelayout is the one deliberate exception: it reports true, since
// a redundant layout pass is cheap and a skipped one leaves stale UI on
// screen.
type Forward struct {
	core Core
}

// NewForward creates a Forward delegating through the given core.
func NewForward(core Core) Forward {
	if core == nil {
		panic("view: NewForward requires a non-nil Core")
	}
	return Forward{core: core}
}

// Draw implements View. Unavailable child: draws nothing.
func (f *Forward) Draw(p Printer) {
	f.core.WithView(func(v View) {
		v.Draw(p)
	})
}

// RequiredSize implements View. Unavailable child: zero size.
func (f *Forward) RequiredSize(constraint Vec2) Vec2 {
	var size Vec2
	if f.core.WithViewMut(func(v View) {
		size = v.RequiredSize(constraint)
	}) {
		return size
	}
	return Zero()
}

// OnEvent implements View. Unavailable child: Ignored.
func (f *Forward) OnEvent(ev Event) Result {
	res := Ignored()
	f.core.WithViewMut(func(v View) {
		res = v.OnEvent(ev)
	})
	return res
}

// Layout implements View. Unavailable child: no-op.
func (f *Forward) Layout(size Vec2) {
	f.core.WithViewMut(func(v View) {
		v.Layout(size)
	})
}

// TakeFocus implements View. Unavailable child: refuses focus.
func (f *Forward) TakeFocus(source Direction) bool {
	took := false
	f.core.WithViewMut(func(v View) {
		took = v.TakeFocus(source)
	})
	return took
}

// CallOnAny implements View. Unavailable child: no matches.
func (f *Forward) CallOnAny(sel Selector, fn func(View)) {
	f.core.WithViewMut(func(v View) {
		v.CallOnAny(sel, fn)
	})
}

// FocusView implements View. Unavailable child: failure.
func (f *Forward) FocusView(sel Selector) bool {
	ok := false
	f.core.WithViewMut(func(v View) {
		ok = v.FocusView(sel)
	})
	return ok
}

// NeedsRelayout implements View. Unavailable child: true, forcing a
// relayout rather than risking a stale one.
func (f *Forward) NeedsRelayout() bool {
	stale := true
	if f.core.WithView(func(v View) {
		stale = v.NeedsRelayout()
	}) {
		return stale
	}
	return true
}

// ImportantArea implements View. Unavailable child: a zero-sized area at
// the origin.
func (f *Forward) ImportantArea(size Vec2) Rect {
	var area Rect
	if f.core.WithView(func(v View) {
		area = v.ImportantArea(size)
	}) {
		return area
	}
	return RectAt(Zero())
}

// Unwrap attempts to take the child out of the wrapper. It succeeds only
// if the underlying core supports extraction; otherwise the wrapper is
// left untouched and remains fully usable. Callers branch on the second
// return value; a false result is an expected outcome, not an error.
func (f *Forward) Unwrap() (View, bool) {
	if ex, ok := f.core.(Extractor); ok {
		return ex.TakeView()
	}
	return nil, false
}

var _ View = (*Forward)(nil)
