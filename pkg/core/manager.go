package core

import (
	"slices"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// DebugMode outlines the bounds of every root widget after RenderAll.
var DebugMode = false

// SetDebugMode enables or disables bounds outlines.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// WidgetManager owns the ordered list of root widgets.
//
// Every pass iterates a snapshot of the list, so widgets may add or remove
// roots from their handlers; the change takes effect on the next pass.
type WidgetManager struct {
	widgets  []Widget
	viewport graphics.Size
}

// NewWidgetManager returns an empty manager.
func NewWidgetManager() *WidgetManager {
	return &WidgetManager{}
}

// AddWidget appends w to the root list, on top of the z-order. A nil widget
// is ignored. A widget that already has a layout parent or is already a root
// is rejected: the returned TreeError is also reported with KindTree and the
// list is left unchanged.
func (m *WidgetManager) AddWidget(w Widget) error {
	if w == nil {
		return nil
	}
	var cause error
	switch {
	case w.Parent() != nil:
		cause = errors.ErrAlreadyAttached
	case slices.Contains(m.widgets, w):
		cause = errors.ErrAlreadyRoot
	}
	if cause != nil {
		err := &errors.TreeError{Op: "core.AddWidget", Parent: "WidgetManager", Child: Describe(w), Err: cause}
		errors.Report(&errors.FernError{Op: err.Op, Kind: errors.KindTree, Err: err, Widget: err.Child})
		return err
	}
	m.widgets = append(m.widgets, w)
	return nil
}

// RemoveWidget removes w from the root list. It reports whether w was
// registered.
func (m *WidgetManager) RemoveWidget(w Widget) bool {
	i := slices.Index(m.widgets, w)
	if i < 0 {
		return false
	}
	m.widgets = slices.Delete(m.widgets, i, i+1)
	return true
}

// Clear removes every root widget.
func (m *WidgetManager) Clear() {
	clear(m.widgets)
	m.widgets = m.widgets[:0]
}

// Widgets returns a copy of the root list in paint order.
func (m *WidgetManager) Widgets() []Widget {
	return slices.Clone(m.widgets)
}

// Len returns the number of root widgets.
func (m *WidgetManager) Len() int {
	return len(m.widgets)
}

func (m *WidgetManager) snapshot() []Widget {
	return slices.Clone(m.widgets)
}

// RenderAll renders every visible root in insertion order. A widget that
// panics is reported and skipped.
func (m *WidgetManager) RenderAll(c *rendering.Canvas) {
	if c == nil {
		return
	}
	for _, w := range m.snapshot() {
		if !w.Visible() {
			continue
		}
		errors.Guard("core.RenderAll", Describe(w), func() {
			w.Render(c)
		})
		if DebugMode {
			b := w.Bounds()
			c.Rect(b.X, b.Y, b.Width, b.Height, graphics.Magenta, false)
		}
	}
}

// DispatchInput offers in to visible roots from last to first and stops at
// the first widget that consumes it. It reports whether any widget did.
// A handler that panics is reported and treated as not consuming. Every
// HoverTracker in the tree is settled afterwards.
func (m *WidgetManager) DispatchInput(in input.Snapshot) bool {
	widgets := m.snapshot()
	consumed := false
	for i := len(widgets) - 1; i >= 0 && !consumed; i-- {
		w := widgets[i]
		if !w.Visible() {
			continue
		}
		errors.Guard("core.DispatchInput", Describe(w), func() {
			consumed = w.HandleInput(in)
		})
	}
	settleHover(widgets)
	return consumed
}

func settleHover(roots []Widget) {
	for _, root := range roots {
		Walk(root, func(w Widget, _ int) bool {
			if t, ok := w.(HoverTracker); ok {
				errors.Guard("core.SettleHover", Describe(w), t.SettleHover)
			}
			return true
		})
	}
}

// LayoutAll lays out visible roots within the viewport. Roots are given
// loose constraints so that they keep their own size up to the viewport.
// Only roots that need layout are visited unless the viewport changed.
func (m *WidgetManager) LayoutAll(viewport graphics.Size) {
	resized := viewport != m.viewport
	m.viewport = viewport
	c := layout.Loose(viewport)
	for _, w := range m.snapshot() {
		if !w.Visible() || (!resized && !w.NeedsLayout()) {
			continue
		}
		errors.Guard("core.LayoutAll", Describe(w), func() {
			w.Layout(c)
		})
	}
}
