package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Expanded makes its child fill a share of the free main-axis space in a
// Column or Row. The share is proportional to the flex factor. Outside a
// flex container it fills its constraints.
type Expanded struct {
	core.Base
	flex  int
	child slot
}

// ExpandedOf wraps child with the given flex factor. A factor of 0 takes no
// free space unless every flex sibling is also 0, in which case the space is
// split evenly. Negative factors count as 0. It panics if child cannot be
// attached.
func ExpandedOf(flex int, child core.Widget) *Expanded {
	e := &Expanded{flex: flex}
	if child != nil {
		mustAttach(e.SetChild(child))
	}
	return e
}

// NewSpacer returns an empty Expanded that takes a flex share of the free
// space.
func NewSpacer(flex int) *Expanded {
	return &Expanded{flex: flex}
}

// FlexFactor implements FlexFactor.
func (e *Expanded) FlexFactor() int {
	return max(e.flex, 0)
}

// SetFlex changes the flex factor.
func (e *Expanded) SetFlex(flex int) {
	if e.flex != flex {
		e.flex = flex
		e.MarkNeedsLayout()
	}
}

// Child returns the wrapped widget.
func (e *Expanded) Child() core.Widget { return e.child.child }

// SetChild replaces the wrapped widget. Nil removes it.
func (e *Expanded) SetChild(child core.Widget) error {
	return e.child.set("widgets.Expanded.SetChild", e, child)
}

// Layout implements core.Widget. The child is forced to the full size.
func (e *Expanded) Layout(c layout.Constraints) graphics.Size {
	if size, ok := e.CachedLayout(c); ok {
		return size
	}
	size := c.Biggest()
	if e.child.child != nil {
		size = c.Constrain(e.child.child.Layout(layout.Tight(size)))
	}
	e.CommitLayout(c, size)
	e.child.place(e.Position())
	return size
}

// SetPosition moves the widget and its child.
func (e *Expanded) SetPosition(x, y int) {
	if e.Position() == graphics.Pt(x, y) {
		return
	}
	e.Base.SetPosition(x, y)
	e.child.place(e.Position())
}

// Render draws the child.
func (e *Expanded) Render(c *rendering.Canvas) { e.child.render(c) }

// HandleInput forwards input to the child.
func (e *Expanded) HandleInput(in input.Snapshot) bool { return e.child.handleInput(in) }
