package engine

import "github.com/go-fern/fern/pkg/core"

// HitTest returns the visible widgets whose bounds contain (x, y), ordered
// topmost first: later roots before earlier ones, descendants before their
// ancestors. Hidden widgets hide their whole subtree.
func HitTest(roots []core.Widget, x, y int) []core.Widget {
	var hits []core.Widget
	for i := len(roots) - 1; i >= 0; i-- {
		hits = hitTest(roots[i], x, y, 0, hits)
	}
	return hits
}

func hitTest(w core.Widget, x, y, depth int, hits []core.Widget) []core.Widget {
	if w == nil || !w.Visible() || depth > maxTreeDepth {
		return hits
	}
	children := core.ChildrenOf(w)
	for i := len(children) - 1; i >= 0; i-- {
		hits = hitTest(children[i], x, y, depth+1, hits)
	}
	if w.Bounds().Contains(x, y) {
		hits = append(hits, w)
	}
	return hits
}
