package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

func TestPixelSet(t *testing.T) {
	c := rendering.NewCanvas(6, 5)
	c.Clear(graphics.Black)
	c.FillRect(graphics.RectXYWH(1, 2, 3, 2), graphics.Red)
	c.SetPixel(5, 0, graphics.Blue)

	red := PixelsOf(c, graphics.Red)
	if !red.Equal(RectSet(graphics.RectXYWH(1, 2, 3, 2))) {
		t.Errorf("red pixels = %v", red.Points())
	}
	if got := red.Bounds(); got != graphics.RectXYWH(1, 2, 3, 2) {
		t.Errorf("Bounds = %v", got)
	}

	ink := PixelsNot(c, graphics.Black)
	if ink.Len() != 7 || !ink.Contains(5, 0) || ink.Contains(0, 0) {
		t.Errorf("non-background pixels = %v", ink.Points())
	}

	want := []graphics.Point{{X: 5, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if diff := cmp.Diff(want, ink.Points()[:3]); diff != "" {
		t.Errorf("Points order mismatch (-want +got):\n%s", diff)
	}

	if (PixelSet{}).Bounds() != (graphics.Rect{}) {
		t.Error("empty set should have zero bounds")
	}
	if PointSet(graphics.Pt(1, 1)).Equal(PointSet(graphics.Pt(1, 2))) {
		t.Error("different points should not be equal")
	}
}
