package layout

import "fmt"

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for Row, vertical for Column).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end.
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	// No space before the first or after the last child.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround gives each child equal space on both sides,
	// so the outer gaps are half the inner ones.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	case MainAxisAlignmentSpaceAround:
		return "space_around"
	case MainAxisAlignmentSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis.
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch forces children to the full cross extent.
	CrossAxisAlignmentStretch
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// MainAxisSize controls how much space a flex container takes along its
// main axis.
type MainAxisSize int

const (
	// MainAxisSizeMax fills a bounded main axis. With an unbounded main axis
	// it behaves like MainAxisSizeMin.
	MainAxisSizeMax MainAxisSize = iota
	// MainAxisSizeMin shrink-wraps the children.
	MainAxisSizeMin
)

// String returns a human-readable representation of the main axis size.
func (s MainAxisSize) String() string {
	switch s {
	case MainAxisSizeMax:
		return "max"
	case MainAxisSizeMin:
		return "min"
	default:
		return fmt.Sprintf("MainAxisSize(%d)", int(s))
	}
}

// MainAxisSpacing returns the leading offset before the first child and the
// extra gap inserted between consecutive children for n children and the
// given free space. Negative free space is treated as zero.
//
//	Start:        lead 0,        gap 0
//	End:          lead free,     gap 0
//	Center:       lead free/2,   gap 0
//	SpaceBetween: lead 0,        gap free/(n-1)
//	SpaceAround:  lead gap/2,    gap free/n
//	SpaceEvenly:  lead gap,      gap free/(n+1)
func MainAxisSpacing(alignment MainAxisAlignment, free, n int) (lead, gap int) {
	free = max(free, 0)
	switch alignment {
	case MainAxisAlignmentEnd:
		lead = free
	case MainAxisAlignmentCenter:
		lead = free / 2
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			gap = free / (n - 1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			gap = free / n
			lead = gap / 2
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			gap = free / (n + 1)
			lead = gap
		}
	}
	return lead, gap
}

// CrossAxisOffset returns the offset of a child of the given cross extent
// inside a parent cross extent. Stretch and Start place the child at 0.
func CrossAxisOffset(alignment CrossAxisAlignment, parent, child int) int {
	free := parent - child
	if free <= 0 {
		return 0
	}
	switch alignment {
	case CrossAxisAlignmentEnd:
		return free
	case CrossAxisAlignmentCenter:
		return free / 2
	default:
		return 0
	}
}

// DistributeFlex splits remaining space between flex children in
// proportion to their weights: share_i = remaining * w_i / Σw, rounded down.
// Non-positive remaining space gives every child 0. When every weight is
// zero (or negative) each child is treated as weight 1.
func DistributeFlex(remaining int, weights []int) []int {
	shares := make([]int, len(weights))
	if remaining <= 0 || len(weights) == 0 {
		return shares
	}
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	for i, w := range weights {
		if total == 0 {
			shares[i] = remaining / len(weights)
			continue
		}
		shares[i] = int(int64(remaining) * int64(max(w, 0)) / int64(total))
	}
	return shares
}
