package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Padding insets its child by the given amounts.
//
// Use [layout.EdgeInsets] helpers to create padding values:
//
//	PaddingOf(layout.EdgeInsetsAll(16), child)
//	PaddingOf(layout.EdgeInsetsSymmetric(24, 12), child)
//	PaddingOf(layout.EdgeInsetsOnly(8, 0, 8, 0), child)
//
// The child is laid out with the constraints deflated by the insets and
// placed at (Left, Top) from the padding's origin.
type Padding struct {
	core.Base
	insets layout.EdgeInsets
	child  slot
}

// PaddingOf wraps child with insets. It panics if child cannot be attached.
func PaddingOf(insets layout.EdgeInsets, child core.Widget) *Padding {
	p := &Padding{insets: insets}
	if child != nil {
		mustAttach(p.SetChild(child))
	}
	return p
}

// Insets returns the padding amounts.
func (p *Padding) Insets() layout.EdgeInsets { return p.insets }

// SetInsets changes the padding amounts.
func (p *Padding) SetInsets(insets layout.EdgeInsets) {
	if p.insets != insets {
		p.insets = insets
		p.MarkNeedsLayout()
	}
}

// Child returns the padded widget.
func (p *Padding) Child() core.Widget { return p.child.child }

// SetChild replaces the padded widget. Nil removes it.
func (p *Padding) SetChild(child core.Widget) error {
	return p.child.set("widgets.Padding.SetChild", p, child)
}

// Layout implements core.Widget.
func (p *Padding) Layout(c layout.Constraints) graphics.Size {
	if size, ok := p.CachedLayout(c); ok {
		return size
	}
	h, v := p.insets.Horizontal(), p.insets.Vertical()
	inner := graphics.Size{}
	if p.child.child != nil {
		inner = p.child.child.Layout(c.Deflate(p.insets))
	}
	size := c.Constrain(graphics.Size{Width: inner.Width + h, Height: inner.Height + v})
	p.child.offset = graphics.Pt(p.insets.Left, p.insets.Top)
	p.CommitLayout(c, size)
	p.child.place(p.Position())
	return size
}

// SetPosition moves the widget and its child.
func (p *Padding) SetPosition(x, y int) {
	if p.Position() == graphics.Pt(x, y) {
		return
	}
	p.Base.SetPosition(x, y)
	p.child.place(p.Position())
}

// Render draws the child.
func (p *Padding) Render(c *rendering.Canvas) { p.child.render(c) }

// HandleInput forwards input to the child.
func (p *Padding) HandleInput(in input.Snapshot) bool { return p.child.handleInput(in) }
