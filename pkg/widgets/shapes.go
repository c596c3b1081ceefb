package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

// Box draws a filled or outlined rectangle covering its bounds.
type Box struct {
	core.Base
	color  graphics.Color
	filled bool
}

// NewBox returns a rectangle at (x, y).
func NewBox(x, y, width, height int, col graphics.Color, filled bool) *Box {
	return &Box{Base: core.NewBase(x, y, width, height), color: col, filled: filled}
}

// SetColor changes the color.
func (b *Box) SetColor(col graphics.Color) { b.color = col }

// Color returns the color.
func (b *Box) Color() graphics.Color { return b.color }

// Render implements core.Widget.
func (b *Box) Render(c *rendering.Canvas) {
	r := b.Bounds()
	if b.filled && !b.color.IsOpaque() {
		c.FillRectAlpha(r, b.color)
		return
	}
	c.Rect(r.X, r.Y, r.Width, r.Height, b.color, b.filled)
}

// CircleShape draws a circle inscribed in its bounds.
type CircleShape struct {
	core.Base
	radius int
	color  graphics.Color
	filled bool
}

// NewCircle returns a circle centred on (cx, cy). Its bounds span the
// 2r+1 pixel square around the centre.
func NewCircle(cx, cy, radius int, col graphics.Color, filled bool) *CircleShape {
	radius = max(radius, 0)
	d := 2*radius + 1
	return &CircleShape{
		Base:   core.NewBase(cx-radius, cy-radius, d, d),
		radius: radius,
		color:  col,
		filled: filled,
	}
}

// Radius returns the radius.
func (s *CircleShape) Radius() int { return s.radius }

// Center returns the centre in canvas coordinates.
func (s *CircleShape) Center() graphics.Point {
	return s.Position().Add(graphics.Pt(s.radius, s.radius))
}

// SetColor changes the color.
func (s *CircleShape) SetColor(col graphics.Color) { s.color = col }

// Render implements core.Widget.
func (s *CircleShape) Render(c *rendering.Canvas) {
	p := s.Center()
	c.Circle(p.X, p.Y, s.radius, s.color, s.filled)
}

// LineShape draws a line segment. Its bounds are the bounding box of the
// endpoints, so moving the widget moves both endpoints.
type LineShape struct {
	core.Base
	from, to  graphics.Point // relative to the bounds origin
	thickness int
	color     graphics.Color
}

// NewLine returns a line from (x1, y1) to (x2, y2). A thickness above 1
// draws with a square brush.
func NewLine(x1, y1, x2, y2, thickness int, col graphics.Color) *LineShape {
	x, y := min(x1, x2), min(y1, y2)
	w, h := max(x1, x2)-x+1, max(y1, y2)-y+1
	return &LineShape{
		Base:      core.NewBase(x, y, w, h),
		from:      graphics.Pt(x1-x, y1-y),
		to:        graphics.Pt(x2-x, y2-y),
		thickness: max(thickness, 1),
		color:     col,
	}
}

// Endpoints returns the endpoints in canvas coordinates.
func (l *LineShape) Endpoints() (from, to graphics.Point) {
	o := l.Position()
	return o.Add(l.from), o.Add(l.to)
}

// SetColor changes the color.
func (l *LineShape) SetColor(col graphics.Color) { l.color = col }

// Render implements core.Widget.
func (l *LineShape) Render(c *rendering.Canvas) {
	a, b := l.Endpoints()
	if l.thickness > 1 {
		c.ThickLine(a.X, a.Y, b.X, b.Y, l.thickness, l.color)
		return
	}
	c.Line(a.X, a.Y, b.X, b.Y, l.color)
}

// GradientBox fills its bounds with a linear gradient.
type GradientBox struct {
	core.Base
	from, to graphics.Color
	axis     rendering.GradientAxis
}

// NewGradientBox returns a gradient rectangle at (x, y).
func NewGradientBox(x, y, width, height int, from, to graphics.Color, axis rendering.GradientAxis) *GradientBox {
	return &GradientBox{Base: core.NewBase(x, y, width, height), from: from, to: to, axis: axis}
}

// SetColors changes the gradient endpoints.
func (g *GradientBox) SetColors(from, to graphics.Color) {
	g.from, g.to = from, to
}

// Render implements core.Widget.
func (g *GradientBox) Render(c *rendering.Canvas) {
	c.LinearGradient(g.Bounds(), g.from, g.to, g.axis)
}
