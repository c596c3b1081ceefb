package core

import (
	"fmt"

	"github.com/go-fern/fern/pkg/errors"
)

// Named is implemented by widgets that want a custom name in diagnostics.
type Named interface {
	DebugName() string
}

// Describe returns a short name for w used in errors and logs.
func Describe(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	if n, ok := w.(Named); ok {
		return n.DebugName()
	}
	return fmt.Sprintf("%T", w)
}

// CheckAttach reports whether child may become a child of parent. It returns
// a *errors.TreeError wrapping errors.ErrNilChild, errors.ErrSelfAttach,
// errors.ErrAlreadyAttached, or errors.ErrCycle.
func CheckAttach(op string, parent, child Widget) error {
	fail := func(cause error) error {
		return &errors.TreeError{Op: op, Parent: Describe(parent), Child: Describe(child), Err: cause}
	}
	switch {
	case child == nil:
		return fail(errors.ErrNilChild)
	case child == parent:
		return fail(errors.ErrSelfAttach)
	case child.Parent() != nil:
		return fail(errors.ErrAlreadyAttached)
	}
	for p := parent; p != nil; p = p.Parent() {
		if p == child {
			return fail(errors.ErrCycle)
		}
	}
	return nil
}

// Attach validates and records parent as the owner of child, then marks
// parent for layout.
func Attach(op string, parent, child Widget) error {
	if err := CheckAttach(op, parent, child); err != nil {
		return err
	}
	child.SetParent(parent)
	parent.MarkNeedsLayout()
	return nil
}

// Detach clears the back-reference of child if parent owns it.
func Detach(parent, child Widget) {
	if child == nil || child.Parent() != parent {
		return
	}
	child.SetParent(nil)
	parent.MarkNeedsLayout()
}

// Root returns the topmost ancestor of w.
func Root(w Widget) Widget {
	for w != nil && w.Parent() != nil {
		w = w.Parent()
	}
	return w
}

// HoverTracker is implemented by widgets that keep pointer-over state. After
// every dispatch the manager calls SettleHover on each tracker in the tree,
// so one that the input never reached can drop its hover.
type HoverTracker interface {
	SettleHover()
}

// MultiChild is implemented by layout nodes with a list of children.
type MultiChild interface {
	Children() []Widget
}

// SingleChild is implemented by layout nodes that wrap one child.
type SingleChild interface {
	Child() Widget
}

// ChildrenOf returns the children of w in paint order, or nil for a leaf.
func ChildrenOf(w Widget) []Widget {
	switch n := w.(type) {
	case MultiChild:
		return n.Children()
	case SingleChild:
		if c := n.Child(); c != nil {
			return []Widget{c}
		}
	}
	return nil
}

// Walk visits w and its descendants depth-first in paint order. If fn
// returns false the subtree below that widget is skipped.
func Walk(w Widget, fn func(w Widget, depth int) bool) {
	walk(w, 0, fn)
}

func walk(w Widget, depth int, fn func(Widget, int) bool) {
	if w == nil || !fn(w, depth) {
		return
	}
	for _, c := range ChildrenOf(w) {
		walk(c, depth+1, fn)
	}
}
