package view

// Event is an input event fed into a view's OnEvent. Wrappers forward
// events without inspecting them; only leaf and composite views branch
// on the concrete variant.
type Event interface {
	isEvent()
}

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// Mod is a bitmask of modifier keys held during a key event.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Key  Key
	Rune rune // Set when Key == KeyRune
	Mod  Mod
}

func (KeyEvent) isEvent() {}

// MouseButton identifies which button produced a mouse event.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseEvent is a pointer action at a position relative to the view
// receiving it.
type MouseEvent struct {
	Button MouseButton
	Pos    Vec2
}

func (MouseEvent) isEvent() {}
