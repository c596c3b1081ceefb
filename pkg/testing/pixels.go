package testing

import (
	"cmp"
	"slices"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

// PixelSet is a set of canvas coordinates.
type PixelSet map[graphics.Point]struct{}

// PixelsOf collects every pixel of c that equals col.
func PixelsOf(c *rendering.Canvas, col graphics.Color) PixelSet {
	return PixelsWhere(c, func(got graphics.Color) bool { return got == col })
}

// PixelsNot collects every pixel of c that differs from col, typically the
// background.
func PixelsNot(c *rendering.Canvas, col graphics.Color) PixelSet {
	return PixelsWhere(c, func(got graphics.Color) bool { return got != col })
}

// PixelsWhere collects every pixel of c for which keep returns true.
func PixelsWhere(c *rendering.Canvas, keep func(graphics.Color) bool) PixelSet {
	set := PixelSet{}
	for y := range c.Height() {
		for x := range c.Width() {
			if keep(c.GetPixel(x, y)) {
				set[graphics.Pt(x, y)] = struct{}{}
			}
		}
	}
	return set
}

// PointSet builds a set from explicit points.
func PointSet(points ...graphics.Point) PixelSet {
	set := make(PixelSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

// RectSet builds the set of every pixel inside r.
func RectSet(r graphics.Rect) PixelSet {
	set := PixelSet{}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			set[graphics.Pt(x, y)] = struct{}{}
		}
	}
	return set
}

// Len returns the number of pixels.
func (s PixelSet) Len() int { return len(s) }

// Contains reports whether (x, y) is in the set.
func (s PixelSet) Contains(x, y int) bool {
	_, ok := s[graphics.Pt(x, y)]
	return ok
}

// Bounds returns the smallest rectangle holding every pixel, or the zero
// Rect for an empty set.
func (s PixelSet) Bounds() graphics.Rect {
	if len(s) == 0 {
		return graphics.Rect{}
	}
	first := true
	var minX, minY, maxX, maxY int
	for p := range s {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return graphics.RectXYWH(minX, minY, maxX-minX+1, maxY-minY+1)
}

// Points returns the pixels sorted by row, then column.
func (s PixelSet) Points() []graphics.Point {
	out := make([]graphics.Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b graphics.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Equal reports whether both sets hold the same pixels.
func (s PixelSet) Equal(o PixelSet) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if _, ok := o[p]; !ok {
			return false
		}
	}
	return true
}
