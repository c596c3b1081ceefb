package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// SizedBox is a box with a fixed size, clamped to its constraints. It is
// most often used as a gap between children of a Column or Row. An
// optional child is forced to the box's size.
type SizedBox struct {
	core.Base
	child slot
}

// NewSizedBox returns an empty box of the given size.
func NewSizedBox(width, height int) *SizedBox {
	return &SizedBox{Base: core.NewBase(0, 0, width, height)}
}

// SizedBoxOf returns a box of the given size holding child. It panics if
// child cannot be attached.
func SizedBoxOf(width, height int, child core.Widget) *SizedBox {
	s := NewSizedBox(width, height)
	if child != nil {
		mustAttach(s.SetChild(child))
	}
	return s
}

// VSpace returns a vertical gap.
func VSpace(height int) *SizedBox { return NewSizedBox(0, height) }

// HSpace returns a horizontal gap.
func HSpace(width int) *SizedBox { return NewSizedBox(width, 0) }

// Child returns the wrapped widget.
func (s *SizedBox) Child() core.Widget { return s.child.child }

// SetChild replaces the wrapped widget. Nil removes it.
func (s *SizedBox) SetChild(child core.Widget) error {
	return s.child.set("widgets.SizedBox.SetChild", s, child)
}

// Layout implements core.Widget.
func (s *SizedBox) Layout(c layout.Constraints) graphics.Size {
	if size, ok := s.CachedLayout(c); ok {
		return size
	}
	size := c.Constrain(s.PreferredSize())
	if s.child.child != nil {
		s.child.child.Layout(layout.Tight(size))
	}
	s.CommitLayout(c, size)
	s.child.place(s.Position())
	return size
}

// SetPosition moves the widget and its child.
func (s *SizedBox) SetPosition(x, y int) {
	if s.Position() == graphics.Pt(x, y) {
		return
	}
	s.Base.SetPosition(x, y)
	s.child.place(s.Position())
}

// Render draws the child.
func (s *SizedBox) Render(c *rendering.Canvas) { s.child.render(c) }

// HandleInput forwards input to the child.
func (s *SizedBox) HandleInput(in input.Snapshot) bool { return s.child.handleInput(in) }
