package view

// Rect is an axis-aligned rectangle in a parent's coordinate space.
// Views use it to report the sub-region they most want kept visible,
// for example a cursor position or the selected row of a list.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// RectOf creates a rectangle from a position and a size.
func RectOf(pos, size Vec2) Rect {
	return Rect{Pos: pos, Size: size}
}

// RectAt creates a zero-sized rectangle at the given position.
func RectAt(pos Vec2) Rect {
	return Rect{Pos: pos}
}

// IsEmpty returns true if the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Size.X == 0 || r.Size.Y == 0
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Pos.Y + r.Size.Y
}

// Right returns the first column right of the rectangle.
func (r Rect) Right() int {
	return r.Pos.X + r.Size.X
}

// Contains returns true if p lies within the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Right() && p.Y >= r.Pos.Y && p.Y < r.Bottom()
}
