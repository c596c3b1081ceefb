package rendering

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/go-fern/fern/pkg/graphics"
)

// Line draws a 1-pixel line from (x1, y1) to (x2, y2) inclusive using
// Bresenham's algorithm.
//
// Endpoints are put in a canonical order before stepping, so Line(a, b) and
// Line(b, a) write exactly the same pixels. Only the part of the line whose
// major coordinate falls on the canvas is walked, so far-off endpoints cost
// no more than the canvas is wide or tall.
func (c *Canvas) Line(x1, y1, x2, y2 int, col graphics.Color) {
	c.walkLine(x1, y1, x2, y2, 0, func(x, y int) {
		c.SetPixel(x, y, col)
	})
}

// ThickLine draws a line with a square brush of the given width centred on
// each Bresenham step. Width <= 1 falls back to Line.
func (c *Canvas) ThickLine(x1, y1, x2, y2, width int, col graphics.Color) {
	if width <= 1 {
		c.Line(x1, y1, x2, y2, col)
		return
	}
	half := width / 2
	c.walkLine(x1, y1, x2, y2, half, func(x, y int) {
		if y < -half || y >= c.height+half || x < -half || x >= c.width+half {
			return
		}
		c.Rect(x-half, y-half, width, width, col, true)
	})
}

// walkLine calls plot for every pixel of the line whose major coordinate is
// within pad of the canvas. The minor coordinate of step t along the major
// axis is the endpoint's plus t*minor/major rounded to nearest, ties away
// from the start. The products are computed in 128 bits, so endpoints
// anywhere in the int range are exact.
func (c *Canvas) walkLine(x1, y1, x2, y2, pad int, plot func(x, y int)) {
	dx := absDiff(x1, x2)
	dy := absDiff(y1, y2)
	if dx >= dy {
		if x2 < x1 || (x2 == x1 && y2 < y1) {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		lo, hi := max(x1, -pad), min(x2, c.width-1+pad)
		for x := lo; x <= hi; x++ {
			plot(x, minorAt(y1, y2, uint64(x)-uint64(x1), dy, dx))
		}
		return
	}
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	lo, hi := max(y1, -pad), min(y2, c.height-1+pad)
	for y := lo; y <= hi; y++ {
		plot(minorAt(x1, x2, uint64(y)-uint64(y1), dx, dy), y)
	}
}

// minorAt returns the minor coordinate after t of major steps along a line
// that moves minor units over major steps from a towards b.
func minorAt(a, b int, t, minor, major uint64) int {
	if major == 0 {
		return a
	}
	hi, lo := bits.Mul64(t, minor)
	q, r := bits.Div64(hi, lo, major)
	if r >= major-r {
		q++
	}
	if b < a {
		return int(uint64(a) - q)
	}
	return int(uint64(a) + q)
}

// absDiff returns |a-b| without overflow.
func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// Rect draws an axis-aligned rectangle with its top-left corner at (x, y).
// A filled rectangle writes every pixel in the box; an outline writes only
// the four 1-pixel edges. Non-positive width or height draws nothing.
func (c *Canvas) Rect(x, y, w, h int, col graphics.Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if filled || w <= 2 || h <= 2 {
		c.fillRect(graphics.Rect{X: x, Y: y, Width: w, Height: h}, col)
		return
	}
	c.fillRect(graphics.Rect{X: x, Y: y, Width: w, Height: 1}, col)
	c.fillRect(graphics.Rect{X: x, Y: satAdd(y, h-1), Width: w, Height: 1}, col)
	c.fillRect(graphics.Rect{X: x, Y: satAdd(y, 1), Width: 1, Height: h - 2}, col)
	c.fillRect(graphics.Rect{X: satAdd(x, w-1), Y: satAdd(y, 1), Width: 1, Height: h - 2}, col)
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r graphics.Rect, col graphics.Color) {
	c.fillRect(r, col)
}

// FillRectAlpha composites col over every pixel of r using col's alpha.
func (c *Canvas) FillRectAlpha(r graphics.Rect, col graphics.Color) {
	if col.IsOpaque() {
		c.fillRect(r, col)
		return
	}
	clip := c.clipRect(r)
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := y * c.width
		for x := clip.X; x < clip.Right(); x++ {
			c.buf[row+x] = graphics.Over(c.buf[row+x], col)
		}
	}
}

func (c *Canvas) fillRect(r graphics.Rect, col graphics.Color) {
	clip := c.clipRect(r)
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := c.buf[y*c.width+clip.X : y*c.width+clip.Right()]
		for i := range row {
			row[i] = col
		}
	}
}

// Circle draws a circle of radius r centred at (cx, cy).
//
// The filled variant writes every pixel with dx²+dy² <= r². The outline
// follows the midpoint rule and mirrors each point into all eight octants.
// A radius of 0 plots the centre; a negative radius draws nothing. Only
// rows and columns that reach the canvas are visited.
func (c *Canvas) Circle(cx, cy, r int, col graphics.Color, filled bool) {
	if r < 0 {
		return
	}
	if filled {
		c.fillCircle(cx, cy, r, col)
		return
	}
	c.circleOutline(cx, cy, r, func(dx, dy int) {
		x, y := satAdd(cx, dx), satAdd(cy, dy)
		c.SetPixel(x, y, col)
	})
}

// circleOutline calls plot for every offset of the outline, including
// duplicates on the axes and diagonals. In the first octant the outline
// point at height y is the largest x whose midpoint x-1/2 lies inside the
// circle, i.e. x(x-1) < r²-y².
func (c *Canvas) circleOutline(cx, cy, r int, plot func(dx, dy int)) {
	emit := func(y int) {
		x := octantX(r, y)
		if x < y {
			return
		}
		plot(x, y)
		plot(y, x)
		plot(-y, x)
		plot(-x, y)
		plot(-x, -y)
		plot(-y, -x)
		plot(y, -x)
		plot(x, -y)
	}
	if r <= c.width+c.height {
		for y := 0; y <= r && octantX(r, y) >= y; y++ {
			emit(y)
		}
		return
	}
	// A large circle only reaches the canvas through octant points whose
	// height matches a visible row or column offset.
	for row := 0; row < c.height; row++ {
		if d := absDiff(row, cy); d <= uint64(r) {
			emit(int(d))
		}
	}
	for col := 0; col < c.width; col++ {
		if d := absDiff(col, cx); d <= uint64(r) {
			emit(int(d))
		}
	}
}

// octantX returns the outline x for height y in the first octant, with
// 0 <= y <= r.
func octantX(r, y int) int {
	if y == 0 {
		return r
	}
	m, above := sqrtDisc(r, y)
	if above {
		return m + 1
	}
	return m
}

func (c *Canvas) fillCircle(cx, cy, r int, col graphics.Color) {
	top, bottom := max(satSub(cy, r), 0), min(satAdd(cy, r), c.height-1)
	for y := top; y <= bottom; y++ {
		span, _ := sqrtDisc(r, int(absDiff(y, cy)))
		c.fillSpan(y, satSub(cx, span), satAdd(cx, span), col)
	}
}

// fillSpan writes col to row y from x0 to x1 inclusive, clipped.
func (c *Canvas) fillSpan(y, x0, x1 int, col graphics.Color) {
	if y < 0 || y >= c.height {
		return
	}
	x0, x1 = max(x0, 0), min(x1, c.width-1)
	if x0 > x1 {
		return
	}
	row := c.buf[y*c.width+x0 : y*c.width+x1+1]
	for i := range row {
		row[i] = col
	}
}

// maxExactRadius bounds radii whose squares are computed in int.
const maxExactRadius = 2_000_000_000

// sqrtDisc returns m = ⌊√n⌋ for n = r²-d², 0 <= d <= r, and whether
// n-m² > m, i.e. m(m+1) < n.
func sqrtDisc(r, d int) (int, bool) {
	if r <= maxExactRadius {
		n := (r - d) * (r + d)
		m := isqrt(n)
		return m, n-m*m > m
	}
	n := new(big.Int).Mul(
		new(big.Int).SetUint64(uint64(r)-uint64(d)),
		new(big.Int).SetUint64(uint64(r)+uint64(d)),
	)
	m := new(big.Int).Sqrt(n)
	rem := n.Sub(n, new(big.Int).Mul(m, m))
	return int(m.Int64()), rem.Cmp(m) > 0
}

// isqrt returns the largest s with s*s <= n, for n >= 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s
}

// satAdd returns a+b clamped to the int range.
func satAdd(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// satSub returns a-b clamped to the int range.
func satSub(a, b int) int {
	if b == math.MinInt {
		if a >= 0 {
			return math.MaxInt
		}
		return a - b
	}
	return satAdd(a, -b)
}
