package widgets

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/rendering"
)

// FlexFactor is implemented by children that take a share of the free
// main-axis space in a Column or Row.
type FlexFactor interface {
	FlexFactor() int
}

// slot holds the single child of a wrapping layout node and its offset
// from the node's origin.
type slot struct {
	child  core.Widget
	offset graphics.Point
}

// set replaces the child. The old child is detached; the new one is
// validated against owner.
func (s *slot) set(op string, owner, child core.Widget) error {
	if child != nil {
		if err := core.CheckAttach(op, owner, child); err != nil {
			return err
		}
	}
	if s.child != nil {
		core.Detach(owner, s.child)
	}
	s.child = child
	s.offset = graphics.Point{}
	if child != nil {
		child.SetParent(owner)
	}
	owner.MarkNeedsLayout()
	return nil
}

func (s *slot) place(origin graphics.Point) {
	if s.child != nil {
		p := origin.Add(s.offset)
		s.child.SetPosition(p.X, p.Y)
	}
}

func (s *slot) render(c *rendering.Canvas) {
	if s.child != nil && s.child.Visible() {
		s.child.Render(c)
	}
}

func (s *slot) handleInput(in input.Snapshot) bool {
	if s.child != nil && s.child.Visible() {
		return s.child.HandleInput(in)
	}
	return false
}

func mustAttach(err error) {
	if err != nil {
		panic(err)
	}
}
