package view

// View is the contract every displayable element satisfies, leaf or
// composite. The driving application walks the tree top-down: it calls
// RequiredSize to negotiate space, Layout to commit an allocation, Draw
// to paint, and OnEvent to dispatch input.
type View interface {
	// Draw paints the view onto the given surface. It must stay within
	// the surface bounds and must not mutate view state.
	Draw(p Printer)

	// RequiredSize returns the size this view needs, given the space
	// available. It is called before Layout and may cache measurements,
	// but must not allocate children.
	RequiredSize(constraint Vec2) Vec2

	// OnEvent processes an input event. It may mutate view state but
	// must not dispatch outside its own subtree. Returns Ignored if the
	// event had no effect.
	OnEvent(ev Event) Result

	// Layout commits the size the parent actually granted. Composites
	// size and position their children within this budget.
	Layout(size Vec2)

	// TakeFocus asks the view to accept keyboard focus, entering from
	// the given direction. Returns true if the view or a descendant now
	// holds focus. Must be idempotent when already focused.
	TakeFocus(source Direction) bool

	// CallOnAny runs fn on every view in this subtree matching the
	// selector, in depth-first order following child ordering. Callers
	// type-assert inside fn to recover concrete types.
	CallOnAny(sel Selector, fn func(View))

	// FocusView attempts to move focus to the view matched by the
	// selector. Returns false if nothing matched or the match refused
	// focus.
	FocusView(sel Selector) bool

	// NeedsRelayout reports whether cached layout is stale. Composites
	// must OR their children's answers with their own.
	NeedsRelayout() bool

	// ImportantArea returns the sub-rectangle, within the given size,
	// that the view most wants kept visible. Ancestors responsible for
	// scrolling use it to bring cursors and selections into view.
	ImportantArea(size Vec2) Rect
}

// Base provides neutral defaults for the View contract. Leaf views embed
// it and override only the operations they implement; a bare Base draws
// nothing, ignores every event, and refuses focus.
type Base struct{}

// Draw implements View. It draws nothing.
func (Base) Draw(Printer) {}

// RequiredSize implements View. It asks for a single cell.
func (Base) RequiredSize(Vec2) Vec2 {
	return XY(1, 1)
}

// OnEvent implements View. It ignores every event.
func (Base) OnEvent(Event) Result {
	return Ignored()
}

// Layout implements View. It does nothing.
func (Base) Layout(Vec2) {}

// TakeFocus implements View. It refuses focus.
func (Base) TakeFocus(Direction) bool {
	return false
}

// CallOnAny implements View. It matches nothing.
func (Base) CallOnAny(Selector, func(View)) {}

// FocusView implements View. It matches nothing.
func (Base) FocusView(Selector) bool {
	return false
}

// NeedsRelayout implements View. It requests a relayout; views that
// cache layout state override this to report staleness precisely.
func (Base) NeedsRelayout() bool {
	return true
}

// ImportantArea implements View. It reports the whole view.
func (Base) ImportantArea(size Vec2) Rect {
	return RectOf(Zero(), size)
}

var _ View = Base{}
