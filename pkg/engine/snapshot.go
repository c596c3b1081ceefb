package engine

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
)

// maxTreeDepth bounds recursion on malformed trees.
const maxTreeDepth = 500

// WidgetNode is a serializable view of one widget and its subtree.
type WidgetNode struct {
	Type        string        `json:"type"`
	Bounds      graphics.Rect `json:"bounds"`
	Visible     bool          `json:"visible"`
	NeedsLayout bool          `json:"needsLayout"`
	Depth       int           `json:"depth"`
	Children    []WidgetNode  `json:"children,omitempty"`
}

// FrameSnapshot captures the widget tree as it stood after a frame.
type FrameSnapshot struct {
	FrameID  uint64        `json:"frameId"`
	Viewport graphics.Size `json:"viewport"`
	Roots    []WidgetNode  `json:"roots"`
}

// CaptureTree serializes roots and their descendants.
func CaptureTree(roots []core.Widget) []WidgetNode {
	out := make([]WidgetNode, 0, len(roots))
	for _, w := range roots {
		if w == nil {
			continue
		}
		out = append(out, captureNode(w, 0))
	}
	return out
}

func captureNode(w core.Widget, depth int) WidgetNode {
	n := WidgetNode{
		Type:        core.Describe(w),
		Bounds:      w.Bounds(),
		Visible:     w.Visible(),
		NeedsLayout: w.NeedsLayout(),
		Depth:       depth,
	}
	if depth >= maxTreeDepth {
		return n
	}
	for _, c := range core.ChildrenOf(w) {
		if c != nil {
			n.Children = append(n.Children, captureNode(c, depth+1))
		}
	}
	return n
}

// Snapshot captures the current widget tree.
func (e *Engine) Snapshot() FrameSnapshot {
	return FrameSnapshot{
		FrameID:  e.frameID,
		Viewport: graphics.Size{Width: e.canvas.Width(), Height: e.canvas.Height()},
		Roots:    CaptureTree(e.manager.Widgets()),
	}
}
