// Package layout holds the value types and arithmetic of Fern's
// constraint-based layout: box constraints passed from parent to child,
// edge insets, and the flex alignment formulas used by Row and Column.
//
// The widgets that apply these rules live in pkg/widgets.
package layout

import (
	"fmt"
	"math"

	"github.com/go-fern/fern/pkg/graphics"
)

// Unbounded marks a maximum dimension with no limit.
const Unbounded = math.MaxInt32

// Constraints bound the size a child may choose during layout.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that allow exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Expand returns unbounded constraints.
func Expand() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// Constrain clamps size into the constraints. Negative sizes clamp to zero.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// ConstrainWidth clamps w into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(w int) int {
	return clamp(w, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps h into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(h int) int {
	return clamp(h, c.MinHeight, c.MaxHeight)
}

// Deflate shrinks the constraints by the insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h := insets.Horizontal()
	v := insets.Vertical()
	return Constraints{
		MinWidth:  max(0, c.MinWidth-h),
		MaxWidth:  deflateMax(c.MaxWidth, h),
		MinHeight: max(0, c.MinHeight-v),
		MaxHeight: deflateMax(c.MaxHeight, v),
	}
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	c.MinWidth = 0
	c.MinHeight = 0
	return c
}

// Biggest returns the largest size allowed. Unbounded axes fall back to the
// minimum.
func (c Constraints) Biggest() graphics.Size {
	w, h := c.MaxWidth, c.MaxHeight
	if w == Unbounded {
		w = c.MinWidth
	}
	if h == Unbounded {
		h = c.MinHeight
	}
	return graphics.Size{Width: w, Height: h}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// IsTight reports whether only one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w=%s, h=%s)", span(c.MinWidth, c.MaxWidth), span(c.MinHeight, c.MaxHeight))
}

func span(lo, hi int) string {
	if hi == Unbounded {
		return fmt.Sprintf("%d..inf", lo)
	}
	if lo == hi {
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}

func deflateMax(v, by int) int {
	if v == Unbounded {
		return Unbounded
	}
	return max(0, v-by)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return max(v, 0)
}
