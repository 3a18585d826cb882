package view

// Direction describes where a focus request comes from, so a composite
// view can pick an appropriate child to focus. A request arriving "from
// the top" typically lands on the first focusable child, one "from the
// bottom" on the last.
type Direction uint8

const (
	// DirNone is an absolute focus request with no spatial origin.
	DirNone Direction = iota

	// DirFromTop means focus is entering from above.
	DirFromTop

	// DirFromBottom means focus is entering from below.
	DirFromBottom

	// DirFromLeft means focus is entering from the left.
	DirFromLeft

	// DirFromRight means focus is entering from the right.
	DirFromRight
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirFromTop:
		return "FromTop"
	case DirFromBottom:
		return "FromBottom"
	case DirFromLeft:
		return "FromLeft"
	case DirFromRight:
		return "FromRight"
	default:
		return "Unknown"
	}
}
