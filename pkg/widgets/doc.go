// Package widgets provides the concrete widgets of Fern: layout nodes
// (Column, Row, Expanded, Padding, Center, SizedBox, Container) and leaf
// widgets (Text, Button, TextInput, shapes, images).
//
// Widgets are retained pointers. Create them once, register the root with a
// core.WidgetManager, and mutate them in place:
//
//	count := widgets.NewText(50, 400, "COUNT: 0", 2, graphics.White)
//	button := widgets.ButtonOf("CLICK ME", func() { count.SetText("COUNT: 1") })
//	manager.AddWidget(widgets.ColumnOf(
//	    layout.MainAxisAlignmentStart,
//	    layout.CrossAxisAlignmentCenter,
//	    layout.MainAxisSizeMin,
//	    button, count,
//	))
//
// # Layout
//
// Layout nodes size their children top-down with layout.Constraints and
// place them relative to their own origin. Moving a node with SetPosition
// moves its whole subtree.
//
// Column and Row measure fixed children with an unbounded main axis, then
// split the remaining space between Expanded children by flex factor.
// Expanded children inside an unbounded main axis get zero space and a
// warning is reported once per node.
//
// # Ownership
//
// A child belongs to exactly one layout node. AddChild and SetChild return
// a *errors.TreeError when the child already has a parent or would create a
// cycle. The XxxOf helpers panic with that error instead, in the style of
// regexp.MustCompile, since they are used to build static trees.
package widgets
