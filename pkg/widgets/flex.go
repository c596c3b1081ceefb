package widgets

import (
	"slices"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Flex lays out children in a single run along one axis. Column and Row
// are Flex with a vertical and horizontal direction.
//
// # Sizing Behavior
//
// With MainAxisSizeMax (the default) a Flex fills a bounded main axis.
// With MainAxisSizeMin, or when the main axis is unbounded, it shrinks to
// fit its children. The cross extent is the largest child, or the full
// bounded cross extent with CrossAxisAlignmentStretch.
//
// # Flexible Children
//
// Wrap children in [Expanded] to make them share remaining space
// proportionally:
//
//	ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStretch, layout.MainAxisSizeMax,
//	    header,
//	    ExpandedOf(1, body), // takes remaining space
//	    footer,
//	)
//
// Invisible children take no space.
type Flex struct {
	core.Base
	direction      layout.Axis
	alignment      layout.MainAxisAlignment
	crossAlignment layout.CrossAxisAlignment
	axisSize       layout.MainAxisSize
	spacing        int

	children []core.Widget
	offsets  []graphics.Point

	unboundedFlexWarned bool // one-shot flag to avoid log spam
	overflowWarned      bool
}

// NewFlex returns an empty flex container along the given axis.
func NewFlex(direction layout.Axis) *Flex {
	return &Flex{direction: direction}
}

// NewColumn returns a vertical flex with default alignment holding the
// children. It panics if a child cannot be attached.
func NewColumn(children ...core.Widget) *Flex {
	return flexOf(layout.AxisVertical, layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMax, children)
}

// NewRow returns a horizontal flex with default alignment holding the
// children. It panics if a child cannot be attached.
func NewRow(children ...core.Widget) *Flex {
	return flexOf(layout.AxisHorizontal, layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMax, children)
}

// ColumnOf creates a vertical layout with the specified alignments and
// sizing behavior. It panics with a *errors.TreeError if a child cannot be
// attached.
func ColumnOf(alignment layout.MainAxisAlignment, crossAlignment layout.CrossAxisAlignment, size layout.MainAxisSize, children ...core.Widget) *Flex {
	return flexOf(layout.AxisVertical, alignment, crossAlignment, size, children)
}

// RowOf creates a horizontal layout with the specified alignments and
// sizing behavior. It panics with a *errors.TreeError if a child cannot be
// attached.
func RowOf(alignment layout.MainAxisAlignment, crossAlignment layout.CrossAxisAlignment, size layout.MainAxisSize, children ...core.Widget) *Flex {
	return flexOf(layout.AxisHorizontal, alignment, crossAlignment, size, children)
}

func flexOf(direction layout.Axis, alignment layout.MainAxisAlignment, crossAlignment layout.CrossAxisAlignment, size layout.MainAxisSize, children []core.Widget) *Flex {
	f := &Flex{
		direction:      direction,
		alignment:      alignment,
		crossAlignment: crossAlignment,
		axisSize:       size,
	}
	for _, child := range children {
		mustAttach(f.AddChild(child))
	}
	return f
}

// DebugName implements core.Named.
func (f *Flex) DebugName() string {
	if f.direction == layout.AxisHorizontal {
		return "Row"
	}
	return "Column"
}

// Direction returns the main axis.
func (f *Flex) Direction() layout.Axis { return f.direction }

// SetMainAxisAlignment changes how children are spread along the main axis.
func (f *Flex) SetMainAxisAlignment(a layout.MainAxisAlignment) {
	if f.alignment != a {
		f.alignment = a
		f.MarkNeedsLayout()
	}
}

// SetCrossAxisAlignment changes how children are placed across the main axis.
func (f *Flex) SetCrossAxisAlignment(a layout.CrossAxisAlignment) {
	if f.crossAlignment != a {
		f.crossAlignment = a
		f.MarkNeedsLayout()
	}
}

// SetMainAxisSize changes whether the flex fills or wraps its main axis.
func (f *Flex) SetMainAxisSize(s layout.MainAxisSize) {
	if f.axisSize != s {
		f.axisSize = s
		f.MarkNeedsLayout()
	}
}

// SetSpacing sets a fixed gap between consecutive children.
func (f *Flex) SetSpacing(spacing int) {
	spacing = max(spacing, 0)
	if f.spacing != spacing {
		f.spacing = spacing
		f.MarkNeedsLayout()
	}
}

// AddChild appends child. It returns a *errors.TreeError if child is nil,
// already has a parent, is f itself, or is an ancestor of f.
func (f *Flex) AddChild(child core.Widget) error {
	if err := core.Attach("widgets.Flex.AddChild", f, child); err != nil {
		return err
	}
	f.children = append(f.children, child)
	return nil
}

// RemoveChild detaches child. It reports whether child belonged to f.
func (f *Flex) RemoveChild(child core.Widget) bool {
	i := slices.Index(f.children, child)
	if i < 0 {
		return false
	}
	f.children = slices.Delete(f.children, i, i+1)
	core.Detach(f, child)
	return true
}

// Children returns a copy of the children in order.
func (f *Flex) Children() []core.Widget {
	return slices.Clone(f.children)
}

func (f *Flex) mainAxis(size graphics.Size) int {
	if f.direction == layout.AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f *Flex) crossAxis(size graphics.Size) int {
	if f.direction == layout.AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f *Flex) makeSize(main, cross int) graphics.Size {
	if f.direction == layout.AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f *Flex) makeOffset(main, cross int) graphics.Point {
	if f.direction == layout.AxisHorizontal {
		return graphics.Point{X: main, Y: cross}
	}
	return graphics.Point{X: cross, Y: main}
}

// childConstraints builds constraints from a main-axis range and the cross
// constraint shared by every child.
func (f *Flex) childConstraints(minMain, maxMain, minCross, maxCross int) layout.Constraints {
	if f.direction == layout.AxisHorizontal {
		return layout.Constraints{MinWidth: minMain, MaxWidth: maxMain, MinHeight: minCross, MaxHeight: maxCross}
	}
	return layout.Constraints{MinWidth: minCross, MaxWidth: maxCross, MinHeight: minMain, MaxHeight: maxMain}
}

func (f *Flex) report(cause error) {
	errors.Report(&errors.FernError{
		Op:     "widgets.Flex.Layout",
		Kind:   errors.KindLayout,
		Err:    cause,
		Widget: f.DebugName(),
	})
}

// Layout implements core.Widget.
func (f *Flex) Layout(c layout.Constraints) graphics.Size {
	if size, ok := f.CachedLayout(c); ok {
		return size
	}

	visible := make([]core.Widget, 0, len(f.children))
	for _, child := range f.children {
		if child.Visible() {
			visible = append(visible, child)
		}
	}
	if len(visible) == 0 {
		f.offsets = f.offsets[:0]
		return f.CommitLayout(c, c.Constrain(graphics.Size{}))
	}

	maxSize := graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	maxMain := f.mainAxis(maxSize)
	maxCross := f.crossAxis(maxSize)
	mainBounded := maxMain < layout.Unbounded
	crossBounded := maxCross < layout.Unbounded

	minCross := 0
	if f.crossAlignment == layout.CrossAxisAlignmentStretch && crossBounded {
		minCross = maxCross
	}

	sizes := make([]graphics.Size, len(visible))
	var weights []int
	var flexIndex []int
	fixed := 0
	for i, child := range visible {
		if ff, ok := child.(FlexFactor); ok {
			flexIndex = append(flexIndex, i)
			weights = append(weights, ff.FlexFactor())
			continue
		}
		sizes[i] = child.Layout(f.childConstraints(0, layout.Unbounded, minCross, maxCross))
		fixed += f.mainAxis(sizes[i])
	}
	gaps := f.spacing * (len(visible) - 1)

	if len(flexIndex) > 0 {
		var shares []int
		switch {
		case !mainBounded:
			if !f.unboundedFlexWarned {
				f.report(errors.ErrUnboundedFlex)
				f.unboundedFlexWarned = true
			}
			shares = make([]int, len(flexIndex))
		default:
			remaining := maxMain - fixed - gaps
			if remaining < 0 && !f.overflowWarned {
				f.report(errors.ErrOverflow)
				f.overflowWarned = true
			}
			shares = layout.DistributeFlex(remaining, weights)
		}
		for j, i := range flexIndex {
			sizes[i] = visible[i].Layout(f.childConstraints(shares[j], shares[j], minCross, maxCross))
		}
	} else if mainBounded && fixed+gaps > maxMain && !f.overflowWarned {
		f.report(errors.ErrOverflow)
		f.overflowWarned = true
	}

	used := gaps
	crossSize := 0
	for _, s := range sizes {
		used += f.mainAxis(s)
		crossSize = max(crossSize, f.crossAxis(s))
	}
	mainSize := used
	if f.axisSize == layout.MainAxisSizeMax && mainBounded {
		mainSize = maxMain
	}
	if f.crossAlignment == layout.CrossAxisAlignmentStretch && crossBounded {
		crossSize = maxCross
	}
	size := c.Constrain(f.makeSize(mainSize, crossSize))
	mainSize = f.mainAxis(size)
	crossSize = f.crossAxis(size)

	lead, gap := layout.MainAxisSpacing(f.alignment, mainSize-used, len(visible))
	f.offsets = f.offsets[:0]
	pos := lead
	vi := 0
	for _, child := range f.children {
		if !child.Visible() {
			f.offsets = append(f.offsets, graphics.Point{})
			continue
		}
		s := sizes[vi]
		vi++
		cross := layout.CrossAxisOffset(f.crossAlignment, crossSize, f.crossAxis(s))
		f.offsets = append(f.offsets, f.makeOffset(pos, cross))
		pos += f.mainAxis(s) + f.spacing + gap
	}

	f.CommitLayout(c, size)
	f.placeChildren()
	return size
}

func (f *Flex) placeChildren() {
	origin := f.Position()
	for i, child := range f.children {
		if i >= len(f.offsets) {
			return
		}
		p := origin.Add(f.offsets[i])
		child.SetPosition(p.X, p.Y)
	}
}

// SetPosition moves the flex and its children.
func (f *Flex) SetPosition(x, y int) {
	if f.Position() == graphics.Pt(x, y) {
		return
	}
	f.Base.SetPosition(x, y)
	f.placeChildren()
}

// Render draws visible children in order.
func (f *Flex) Render(c *rendering.Canvas) {
	for _, child := range f.children {
		if child.Visible() {
			child.Render(c)
		}
	}
}

// HandleInput offers input to visible children from last to first.
func (f *Flex) HandleInput(in input.Snapshot) bool {
	for i := len(f.children) - 1; i >= 0; i-- {
		child := f.children[i]
		if child.Visible() && child.HandleInput(in) {
			return true
		}
	}
	return false
}
