package view

// stubView is a scriptable leaf used across wrapper tests. Every
// operation records that it ran and returns a configured answer.
type stubView struct {
	size      Vec2
	tag       any
	focusable bool
	focused   bool
	stale     bool
	area      Rect
	respond   func(Event) Result

	drawn      int
	negotiated []Vec2
	laidOut    []Vec2
	events     []Event
}

func newStubView() *stubView {
	return &stubView{size: XY(1, 1)}
}

func (s *stubView) Draw(p Printer) {
	s.drawn++
	p.Print(Zero(), "stub")
}

func (s *stubView) RequiredSize(constraint Vec2) Vec2 {
	s.negotiated = append(s.negotiated, constraint)
	return s.size
}

func (s *stubView) OnEvent(ev Event) Result {
	s.events = append(s.events, ev)
	if s.respond != nil {
		return s.respond(ev)
	}
	return Ignored()
}

func (s *stubView) Layout(size Vec2) {
	s.laidOut = append(s.laidOut, size)
}

func (s *stubView) TakeFocus(Direction) bool {
	if !s.focusable {
		return false
	}
	s.focused = true
	return true
}

func (s *stubView) CallOnAny(sel Selector, fn func(View)) {
	if sel.MatchesTag(s.tag) {
		fn(s)
	}
}

func (s *stubView) FocusView(Selector) bool {
	return false
}

func (s *stubView) NeedsRelayout() bool {
	return s.stale
}

func (s *stubView) ImportantArea(size Vec2) Rect {
	if s.area.IsEmpty() {
		return RectOf(Zero(), size)
	}
	return s.area
}

var _ View = (*stubView)(nil)
