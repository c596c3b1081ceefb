// Package core provides the widget interface and the manager that drives
// top-level widgets through a frame.
//
// # Widgets
//
// A Widget is a retained, mutable object that knows its bounds, can render
// itself into a rendering.Canvas, and may consume input. Concrete widgets
// embed Base, which handles the bookkeeping (bounds, visibility, the parent
// back-reference, and the layout cache):
//
//	type Swatch struct {
//	    core.Base
//	    Color graphics.Color
//	}
//
//	func (s *Swatch) Render(c *rendering.Canvas) {
//	    c.FillRect(s.Bounds(), s.Color)
//	}
//
// # Manager
//
// WidgetManager holds the ordered list of root widgets. Insertion order is
// paint order, so later widgets draw on top. Input is dispatched in the
// reverse order and stops at the first widget that consumes it:
//
//	m := core.NewWidgetManager()
//	m.AddWidget(background)
//	m.AddWidget(button)
//	m.DispatchInput(snapshot) // button sees input first
//	m.RenderAll(canvas)       // background paints first
//
// # Ownership
//
// A widget registered with the manager is owned by it until removed. A
// widget attached to a layout node is owned by that node; the node sets
// the child's parent with SetParent. CheckAttach validates an attach before
// it happens so that the tree never contains a cycle or a child with two
// parents.
//
// Widgets are not safe for concurrent use. All methods are called from the
// frame loop goroutine.
package core
