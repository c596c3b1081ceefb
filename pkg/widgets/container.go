package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Container fills its bounds with a color and holds an optional child.
//
// # Sizing Behavior
//
// A positive Width or Height is used as-is (clamped to the constraints).
// A zero dimension fills a bounded axis and otherwise wraps the child. The
// child is laid out loosely within the container's size and placed at its
// origin.
//
//	// Full-screen background at the origin
//	NewContainer(graphics.Black, 0, 0, 800, 600, content)
//
//	// A 4px bar that spans whatever width its parent allows
//	NewContainer(graphics.DarkGray, 0, 0, 0, 4, nil)
type Container struct {
	core.Base
	color graphics.Color
	child slot
}

// NewContainer returns a container at (x, y) with the given size. It panics
// if child cannot be attached.
func NewContainer(col graphics.Color, x, y, width, height int, child core.Widget) *Container {
	ct := &Container{Base: core.NewBase(x, y, width, height), color: col}
	if child != nil {
		mustAttach(ct.SetChild(child))
	}
	return ct
}

// Color returns the fill color.
func (ct *Container) Color() graphics.Color { return ct.color }

// SetColor changes the fill color.
func (ct *Container) SetColor(col graphics.Color) { ct.color = col }

// Child returns the wrapped widget.
func (ct *Container) Child() core.Widget { return ct.child.child }

// SetChild replaces the wrapped widget. Nil removes it.
func (ct *Container) SetChild(child core.Widget) error {
	return ct.child.set("widgets.Container.SetChild", ct, child)
}

// Layout implements core.Widget.
func (ct *Container) Layout(c layout.Constraints) graphics.Size {
	if size, ok := ct.CachedLayout(c); ok {
		return size
	}
	want := ct.PreferredSize()
	maxW, maxH := c.MaxWidth, c.MaxHeight
	if want.Width > 0 {
		maxW = c.ConstrainWidth(want.Width)
	}
	if want.Height > 0 {
		maxH = c.ConstrainHeight(want.Height)
	}
	childSize := graphics.Size{}
	if ct.child.child != nil {
		childSize = ct.child.child.Layout(layout.Constraints{MaxWidth: maxW, MaxHeight: maxH})
	}
	size := graphics.Size{Width: maxW, Height: maxH}
	if maxW == layout.Unbounded {
		size.Width = childSize.Width
	}
	if maxH == layout.Unbounded {
		size.Height = childSize.Height
	}
	size = c.Constrain(size)
	ct.CommitLayout(c, size)
	ct.child.place(ct.Position())
	return size
}

// SetPosition moves the widget and its child.
func (ct *Container) SetPosition(x, y int) {
	if ct.Position() == graphics.Pt(x, y) {
		return
	}
	ct.Base.SetPosition(x, y)
	ct.child.place(ct.Position())
}

// Render fills the bounds and draws the child on top.
func (ct *Container) Render(c *rendering.Canvas) {
	switch {
	case ct.color.A() == 0:
	case ct.color.IsOpaque():
		c.FillRect(ct.Bounds(), ct.color)
	default:
		c.FillRectAlpha(ct.Bounds(), ct.color)
	}
	ct.child.render(c)
}

// HandleInput forwards input to the child.
func (ct *Container) HandleInput(in input.Snapshot) bool { return ct.child.handleInput(in) }
