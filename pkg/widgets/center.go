package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Center positions its child at the center of the available space.
//
// Center fills bounded constraints and shrink-wraps the child along an
// unbounded axis. The child is given loose constraints, allowing it to
// size itself; a child with no intrinsic size stays zero-sized.
//
// Example:
//
//	CenterOf(NewText(0, 0, "MUSIC", 6, graphics.SkyBlue))
type Center struct {
	core.Base
	child slot
}

// CenterOf wraps child. It panics if child cannot be attached.
func CenterOf(child core.Widget) *Center {
	ce := &Center{}
	if child != nil {
		mustAttach(ce.SetChild(child))
	}
	return ce
}

// Child returns the centered widget.
func (ce *Center) Child() core.Widget { return ce.child.child }

// SetChild replaces the centered widget. Nil removes it.
func (ce *Center) SetChild(child core.Widget) error {
	return ce.child.set("widgets.Center.SetChild", ce, child)
}

// Layout implements core.Widget.
func (ce *Center) Layout(c layout.Constraints) graphics.Size {
	if size, ok := ce.CachedLayout(c); ok {
		return size
	}
	childSize := graphics.Size{}
	if ce.child.child != nil {
		childSize = ce.child.child.Layout(c.Loosen())
	}
	size := childSize
	if c.HasBoundedWidth() {
		size.Width = c.MaxWidth
	}
	if c.HasBoundedHeight() {
		size.Height = c.MaxHeight
	}
	size = c.Constrain(size)
	ce.child.offset = graphics.Pt((size.Width-childSize.Width)/2, (size.Height-childSize.Height)/2)
	ce.CommitLayout(c, size)
	ce.child.place(ce.Position())
	return size
}

// SetPosition moves the widget and its child.
func (ce *Center) SetPosition(x, y int) {
	if ce.Position() == graphics.Pt(x, y) {
		return
	}
	ce.Base.SetPosition(x, y)
	ce.child.place(ce.Position())
}

// Render draws the child.
func (ce *Center) Render(c *rendering.Canvas) { ce.child.render(c) }

// HandleInput forwards input to the child.
func (ce *Center) HandleInput(in input.Snapshot) bool { return ce.child.handleInput(in) }
