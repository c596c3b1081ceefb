package core

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Widget is a drawable, optionally interactive node in the UI.
type Widget interface {
	// Render draws the widget into the canvas at its current bounds.
	Render(c *rendering.Canvas)
	// HandleInput offers the frame's input to the widget. It returns true
	// if the widget consumed the input.
	HandleInput(in input.Snapshot) bool
	// Layout sizes the widget within the constraints, positions its
	// children, and returns the chosen size.
	Layout(c layout.Constraints) graphics.Size

	Bounds() graphics.Rect
	SetPosition(x, y int)
	SetSize(width, height int)

	Visible() bool
	SetVisible(visible bool)

	// Parent returns the layout node that owns this widget, or nil.
	Parent() Widget
	// SetParent records the owning layout node. It does not attach.
	SetParent(parent Widget)

	NeedsLayout() bool
	// MarkNeedsLayout invalidates the cached layout of this widget and
	// every ancestor.
	MarkNeedsLayout()
}

// Base implements the bookkeeping parts of Widget. Embed it in concrete
// widgets and override Render, HandleInput, and Layout as needed.
//
// The zero value is a visible, zero-sized widget at the origin that needs
// layout.
type Base struct {
	bounds    graphics.Rect
	preferred graphics.Size
	hidden    bool
	parent    Widget

	dirty           bool
	laidOut         bool
	lastConstraints layout.Constraints
	lastSize        graphics.Size
}

// NewBase returns a Base with the given bounds. The size also becomes the
// preferred size used by the default Layout.
func NewBase(x, y, width, height int) Base {
	return Base{
		bounds:    graphics.Rect{X: x, Y: y, Width: width, Height: height},
		preferred: graphics.Size{Width: width, Height: height},
	}
}

// Render does nothing.
func (b *Base) Render(*rendering.Canvas) {}

// HandleInput consumes nothing.
func (b *Base) HandleInput(input.Snapshot) bool { return false }

// Layout sizes the widget to its preferred size clamped into c.
func (b *Base) Layout(c layout.Constraints) graphics.Size {
	if size, ok := b.CachedLayout(c); ok {
		return size
	}
	return b.CommitLayout(c, c.Constrain(b.preferred))
}

// Bounds returns the widget's rectangle in canvas coordinates.
func (b *Base) Bounds() graphics.Rect { return b.bounds }

// Position returns the top-left corner of the bounds.
func (b *Base) Position() graphics.Point { return b.bounds.Origin() }

// SetPosition moves the widget. Setting the current position is a no-op.
func (b *Base) SetPosition(x, y int) {
	b.bounds.X = x
	b.bounds.Y = y
}

// SetSize requests a new size. It becomes the preferred size and the
// widget is marked for layout. Setting the current size is a no-op.
func (b *Base) SetSize(width, height int) {
	size := graphics.Size{Width: width, Height: height}
	if size == b.preferred && size == b.bounds.Size() {
		return
	}
	b.preferred = size
	b.bounds.Width = width
	b.bounds.Height = height
	b.MarkNeedsLayout()
}

// PreferredSize returns the size the widget asks for during layout.
func (b *Base) PreferredSize() graphics.Size { return b.preferred }

// Visible reports whether the widget renders and receives input.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible shows or hides the widget. Hidden children take no space in
// layout nodes, so a change marks the widget for layout.
func (b *Base) SetVisible(visible bool) {
	if b.hidden == !visible {
		return
	}
	b.hidden = !visible
	b.MarkNeedsLayout()
}

// Parent returns the owning layout node.
func (b *Base) Parent() Widget { return b.parent }

// SetParent records the owning layout node.
func (b *Base) SetParent(parent Widget) { b.parent = parent }

// NeedsLayout reports whether the widget has never been laid out or has
// been invalidated since its last layout.
func (b *Base) NeedsLayout() bool { return b.dirty || !b.laidOut }

// MarkNeedsLayout invalidates the cached layout here and in every ancestor.
func (b *Base) MarkNeedsLayout() {
	b.dirty = true
	if b.parent != nil {
		b.parent.MarkNeedsLayout()
	}
}

// LastConstraints returns the constraints of the most recent layout.
func (b *Base) LastConstraints() layout.Constraints { return b.lastConstraints }

// CachedLayout returns the size from the previous layout if the widget is
// clean and c matches the previous constraints.
func (b *Base) CachedLayout(c layout.Constraints) (graphics.Size, bool) {
	if b.laidOut && !b.dirty && c == b.lastConstraints {
		return b.lastSize, true
	}
	return graphics.Size{}, false
}

// CommitLayout records the result of a layout and applies the size to the
// bounds. It returns size for convenience.
func (b *Base) CommitLayout(c layout.Constraints, size graphics.Size) graphics.Size {
	b.lastConstraints = c
	b.lastSize = size
	b.laidOut = true
	b.dirty = false
	b.bounds.Width = size.Width
	b.bounds.Height = size.Height
	return size
}
