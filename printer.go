package view

import "strings"

// Printer is the drawing surface handed to a view's Draw. The concrete
// terminal backend lives outside this package; views see only a clipped
// region they may print into.
type Printer interface {
	// Size returns the printable extent of this surface.
	Size() Vec2

	// Print writes text starting at pos, in surface-relative
	// coordinates. Output outside the surface bounds is discarded.
	Print(pos Vec2, text string)

	// Offset returns a sub-surface covering the given area, clipped to
	// this surface's bounds. Coordinates in the sub-surface are relative
	// to the area's origin.
	Offset(area Rect) Printer
}

// Recorder is an in-memory Printer backed by a rune grid. It exists for
// tests and examples that need to observe what a view drew without a
// terminal attached.
type Recorder struct {
	cells  []rune
	stride int
	origin Vec2
	size   Vec2
}

// NewRecorder creates a blank recording surface of the given size.
func NewRecorder(size Vec2) *Recorder {
	cells := make([]rune, size.X*size.Y)
	for i := range cells {
		cells[i] = ' '
	}
	return &Recorder{cells: cells, stride: size.X, size: size}
}

// Size implements Printer.
func (r *Recorder) Size() Vec2 {
	return r.size
}

// Print implements Printer.
func (r *Recorder) Print(pos Vec2, text string) {
	if pos.Y < 0 || pos.Y >= r.size.Y {
		return
	}
	x := pos.X
	for _, ch := range text {
		if x >= r.size.X {
			break
		}
		if x >= 0 {
			r.cells[(r.origin.Y+pos.Y)*r.stride+r.origin.X+x] = ch
		}
		x++
	}
}

// Offset implements Printer. The returned surface shares the underlying
// grid, with the area clipped to this surface's bounds.
func (r *Recorder) Offset(area Rect) Printer {
	pos := area.Pos
	size := area.Size
	if pos.X < 0 {
		size.X += pos.X
		pos.X = 0
	}
	if pos.Y < 0 {
		size.Y += pos.Y
		pos.Y = 0
	}
	size = size.Min(r.size.Sub(pos)).Max(Zero())
	return &Recorder{
		cells:  r.cells,
		stride: r.stride,
		origin: r.origin.Add(pos),
		size:   size,
	}
}

// Line returns the content of row y as a string.
func (r *Recorder) Line(y int) string {
	if y < 0 || y >= r.size.Y {
		return ""
	}
	start := (r.origin.Y+y)*r.stride + r.origin.X
	return string(r.cells[start : start+r.size.X])
}

// String returns the full surface content, rows joined by newlines.
func (r *Recorder) String() string {
	lines := make([]string, r.size.Y)
	for y := 0; y < r.size.Y; y++ {
		lines[y] = r.Line(y)
	}
	return strings.Join(lines, "\n")
}

var _ Printer = (*Recorder)(nil)
