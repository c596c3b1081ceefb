package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-fern/fern/pkg/graphics"
)

func TestConstrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 0, MaxHeight: 50}
	tests := []struct {
		name string
		in   graphics.Size
		want graphics.Size
	}{
		{"inside", graphics.Size{Width: 40, Height: 20}, graphics.Size{Width: 40, Height: 20}},
		{"too small", graphics.Size{Width: 1, Height: 0}, graphics.Size{Width: 10, Height: 0}},
		{"too big", graphics.Size{Width: 500, Height: 90}, graphics.Size{Width: 100, Height: 50}},
		{"negative", graphics.Size{Width: -5, Height: -5}, graphics.Size{Width: 10, Height: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Constrain(tt.in); got != tt.want {
				t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeflate(t *testing.T) {
	c := Tight(graphics.Size{Width: 140, Height: 90})
	got := c.Deflate(EdgeInsetsAll(10))
	want := Tight(graphics.Size{Width: 120, Height: 70})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deflate mismatch (-want +got):\n%s", diff)
	}

	small := Loose(graphics.Size{Width: 5, Height: 5}).Deflate(EdgeInsetsSymmetric(10, 10))
	if small.MaxWidth != 0 || small.MaxHeight != 0 {
		t.Errorf("Deflate should clamp at zero, got %v", small)
	}

	unbounded := Expand().Deflate(EdgeInsetsAll(4))
	if unbounded.HasBoundedWidth() || unbounded.HasBoundedHeight() {
		t.Errorf("Deflate should keep unbounded axes unbounded, got %v", unbounded)
	}
}

func TestConstraintsHelpers(t *testing.T) {
	c := Tight(graphics.Size{Width: 3, Height: 4})
	if !c.IsTight() {
		t.Error("Tight should be tight")
	}
	if l := c.Loosen(); l.MinWidth != 0 || l.MinHeight != 0 || l.MaxWidth != 3 {
		t.Errorf("Loosen = %v", l)
	}
	if b := (Constraints{MinWidth: 2, MaxWidth: Unbounded, MaxHeight: 7}).Biggest(); b != (graphics.Size{Width: 2, Height: 7}) {
		t.Errorf("Biggest = %v", b)
	}
	if s := Expand().String(); s != "Constraints(w=0..inf, h=0..inf)" {
		t.Errorf("String = %q", s)
	}
}

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsetsOnly(1, 2, 3, 4)
	if e.Horizontal() != 4 || e.Vertical() != 6 {
		t.Errorf("EdgeInsetsOnly totals = %d, %d", e.Horizontal(), e.Vertical())
	}
	if s := EdgeInsetsSymmetric(5, 7); s.Left != 5 || s.Right != 5 || s.Top != 7 || s.Bottom != 7 {
		t.Errorf("EdgeInsetsSymmetric = %+v", s)
	}
}

func TestDistributeFlex(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		weights   []int
		want      []int
	}{
		{"one to three", 400, []int{1, 3}, []int{100, 300}},
		{"equal", 90, []int{1, 1, 1}, []int{30, 30, 30}},
		{"floor", 10, []int{1, 2}, []int{3, 6}},
		{"no space", 0, []int{1, 2}, []int{0, 0}},
		{"negative space", -20, []int{1}, []int{0}},
		{"all zero weights", 60, []int{0, 0}, []int{30, 30}},
		{"zero beside weighted", 400, []int{0, 2}, []int{0, 400}},
		{"negative counts as zero", 90, []int{-1, 1, 2}, []int{0, 30, 60}},
		{"empty", 100, nil, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeFlex(tt.remaining, tt.weights)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DistributeFlex(%d, %v) mismatch (-want +got):\n%s", tt.remaining, tt.weights, diff)
			}
		})
	}
}

func TestMainAxisSpacing(t *testing.T) {
	tests := []struct {
		align   MainAxisAlignment
		free, n int
		lead    int
		gap     int
	}{
		{MainAxisAlignmentStart, 60, 3, 0, 0},
		{MainAxisAlignmentEnd, 60, 3, 60, 0},
		{MainAxisAlignmentCenter, 60, 3, 30, 0},
		{MainAxisAlignmentSpaceBetween, 60, 3, 0, 30},
		{MainAxisAlignmentSpaceBetween, 60, 1, 0, 0},
		{MainAxisAlignmentSpaceAround, 60, 3, 10, 20},
		{MainAxisAlignmentSpaceEvenly, 60, 3, 15, 15},
		{MainAxisAlignmentCenter, -10, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			lead, gap := MainAxisSpacing(tt.align, tt.free, tt.n)
			if lead != tt.lead || gap != tt.gap {
				t.Errorf("MainAxisSpacing(%v, %d, %d) = (%d, %d), want (%d, %d)",
					tt.align, tt.free, tt.n, lead, gap, tt.lead, tt.gap)
			}
		})
	}
}

func TestCrossAxisOffset(t *testing.T) {
	tests := []struct {
		align CrossAxisAlignment
		want  int
	}{
		{CrossAxisAlignmentStart, 0},
		{CrossAxisAlignmentCenter, 15},
		{CrossAxisAlignmentEnd, 30},
		{CrossAxisAlignmentStretch, 0},
	}
	for _, tt := range tests {
		if got := CrossAxisOffset(tt.align, 50, 20); got != tt.want {
			t.Errorf("CrossAxisOffset(%v) = %d, want %d", tt.align, got, tt.want)
		}
	}
	if got := CrossAxisOffset(CrossAxisAlignmentCenter, 10, 20); got != 0 {
		t.Errorf("overflowing child offset = %d, want 0", got)
	}
}

func TestEnumStrings(t *testing.T) {
	if AxisHorizontal.String() != "horizontal" || Axis(9).String() != "Axis(9)" {
		t.Error("Axis.String")
	}
	if MainAxisSizeMin.String() != "min" || CrossAxisAlignmentStretch.String() != "stretch" {
		t.Error("enum String")
	}
}
