package graphics

import "math"

// Point is an integer position in canvas pixels.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is an integer width and height.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an integer rectangle given by its origin and size.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectXYWH constructs a Rect.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the exclusive right edge, clamped to the int range.
func (r Rect) Right() int {
	return edge(r.X, r.Width)
}

// Bottom returns the exclusive bottom edge, clamped to the int range.
func (r Rect) Bottom() int {
	return edge(r.Y, r.Height)
}

func edge(origin, extent int) int {
	switch {
	case extent > 0 && origin > math.MaxInt-extent:
		return math.MaxInt
	case extent < 0 && origin < math.MinInt-extent:
		return math.MinInt
	}
	return origin + extent
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the half-open rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of r and o, or a zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: span(x0, x1), Height: span(y0, y1)}
}

// span returns hi-lo for lo < hi, clamped to math.MaxInt.
func span(lo, hi int) int {
	if d := uint64(hi) - uint64(lo); d <= math.MaxInt {
		return int(d)
	}
	return math.MaxInt
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks r by the given amounts on each side. Dimensions never go
// below zero.
func (r Rect) Inset(left, top, right, bottom int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}
