package view

// Vec2 is a two-dimensional extent or position in cells.
// It is used both as the available space handed to RequiredSize and as
// the size a view reports back. Coordinates are never negative.
type Vec2 struct {
	X int
	Y int
}

// XY creates a Vec2, clamping negative components to zero.
func XY(x, y int) Vec2 {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Vec2{X: x, Y: y}
}

// Zero returns the zero extent.
func Zero() Vec2 {
	return Vec2{}
}

// IsZero returns true if both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns the component-wise sum.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference, clamped at zero.
func (v Vec2) Sub(other Vec2) Vec2 {
	return XY(v.X-other.X, v.Y-other.Y)
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	if other.X > v.X {
		v.X = other.X
	}
	if other.Y > v.Y {
		v.Y = other.Y
	}
	return v
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	if other.X < v.X {
		v.X = other.X
	}
	if other.Y < v.Y {
		v.Y = other.Y
	}
	return v
}

// FitsIn returns true if v fits inside other on both axes.
func (v Vec2) FitsIn(other Vec2) bool {
	return v.X <= other.X && v.Y <= other.Y
}
