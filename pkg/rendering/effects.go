package rendering

import (
	"image"
	"math"
	"math/rand/v2"

	xdraw "golang.org/x/image/draw"

	"github.com/go-fern/fern/pkg/graphics"
)

// GradientAxis selects the direction of a linear gradient.
type GradientAxis int

const (
	// GradientHorizontal runs from the left edge to the right edge.
	GradientHorizontal GradientAxis = iota
	// GradientVertical runs from the top edge to the bottom edge.
	GradientVertical
)

// LinearGradient fills r with colors interpolated from "from" at the leading
// edge to "to" at the trailing edge. Interpolation is computed against the
// unclipped rectangle, so a partially visible gradient matches the visible
// part of the full one.
func (c *Canvas) LinearGradient(r graphics.Rect, from, to graphics.Color, axis GradientAxis) {
	clip := c.clipRect(r)
	if clip.Empty() {
		return
	}
	span := r.Width
	if axis == GradientVertical {
		span = r.Height
	}
	t := func(i int) float64 {
		if span <= 1 {
			return 0
		}
		return float64(i) / float64(span-1)
	}
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := y * c.width
		if axis == GradientVertical {
			col := graphics.Lerp(from, to, t(y-r.Y))
			for x := clip.X; x < clip.Right(); x++ {
				c.buf[row+x] = col
			}
			continue
		}
		for x := clip.X; x < clip.Right(); x++ {
			c.buf[row+x] = graphics.Lerp(from, to, t(x-r.X))
		}
	}
}

// RadialGradient fills the disc of radius r around (cx, cy), blending from
// inner at the centre to outer at the rim. Only the part of the disc on the
// canvas is visited.
func (c *Canvas) RadialGradient(cx, cy, r int, inner, outer graphics.Color) {
	if r < 0 {
		return
	}
	if r == 0 {
		c.SetPixel(cx, cy, inner)
		return
	}
	top, bottom := max(satSub(cy, r), 0), min(satAdd(cy, r), c.height-1)
	for y := top; y <= bottom; y++ {
		dy := y - cy
		span, _ := sqrtDisc(r, int(absDiff(y, cy)))
		left, right := max(satSub(cx, span), 0), min(satAdd(cx, span), c.width-1)
		row := y * c.width
		for x := left; x <= right; x++ {
			dx := x - cx
			var dist float64
			if r <= maxExactRadius {
				dist = math.Sqrt(float64(dx*dx + dy*dy))
			} else {
				dist = math.Hypot(float64(dx), float64(dy))
			}
			c.buf[row+x] = graphics.Lerp(inner, outer, min(dist/float64(r), 1))
		}
	}
}

// Blur applies a separable box blur of the given radius to the pixels in r.
// Samples outside r are clamped to its edge so colors from outside the
// region never bleed in. A radius <= 0 is a no-op.
func (c *Canvas) Blur(r graphics.Rect, radius int) {
	clip := c.clipRect(r)
	if radius <= 0 || clip.Empty() {
		return
	}
	w, h := clip.Width, clip.Height
	src := make([][4]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col := c.buf[(clip.Y+y)*c.width+clip.X+x]
			src[y*w+x] = [4]float64{float64(col.R()), float64(col.G()), float64(col.B()), float64(col.A())}
		}
	}
	tmp := make([][4]float64, w*h)
	kernel := float64(2*radius + 1)

	// Pass 1: horizontal (src -> tmp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for k := -radius; k <= radius; k++ {
				px := src[y*w+clampInt(x+k, 0, w-1)]
				for ch := range acc {
					acc[ch] += px[ch]
				}
			}
			for ch := range acc {
				tmp[y*w+x][ch] = acc[ch] / kernel
			}
		}
	}

	// Pass 2: vertical (tmp -> canvas)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for k := -radius; k <= radius; k++ {
				px := tmp[clampInt(y+k, 0, h-1)*w+x]
				for ch := range acc {
					acc[ch] += px[ch]
				}
			}
			c.buf[(clip.Y+y)*c.width+clip.X+x] = graphics.RGBA8(
				roundByte(acc[0]/kernel),
				roundByte(acc[1]/kernel),
				roundByte(acc[2]/kernel),
				roundByte(acc[3]/kernel),
			)
		}
	}
}

// Noise perturbs the color channels of every pixel in r by a uniformly
// random offset in [-amount, amount]. Alpha is untouched. The same seed
// always produces the same pattern.
func (c *Canvas) Noise(r graphics.Rect, amount int, seed uint64) {
	clip := c.clipRect(r)
	if amount <= 0 || clip.Empty() {
		return
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	jitter := func(v uint8) uint8 {
		n := int(v) + rng.IntN(2*amount+1) - amount
		return uint8(clampInt(n, 0, 255))
	}
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := y * c.width
		for x := clip.X; x < clip.Right(); x++ {
			col := c.buf[row+x]
			c.buf[row+x] = graphics.RGBA8(jitter(col.R()), jitter(col.G()), jitter(col.B()), col.A())
		}
	}
}

// DrawMask composites col at every pixel of mask, scaled by the mask's
// coverage. The mask's origin is placed at (x, y). Glyph bitmaps from the
// text package arrive here.
func (c *Canvas) DrawMask(mask *image.Alpha, x, y int, col graphics.Color) {
	if mask == nil {
		return
	}
	b := mask.Bounds()
	for my := b.Min.Y; my < b.Max.Y; my++ {
		for mx := b.Min.X; mx < b.Max.X; mx++ {
			coverage := mask.AlphaAt(mx, my).A
			if coverage == 0 {
				continue
			}
			c.BlendPixel(x+mx-b.Min.X, y+my-b.Min.Y, col.Scale(coverage))
		}
	}
}

// ImageFilter selects the scaler used by DrawImage.
type ImageFilter int

const (
	// FilterNearest uses nearest-neighbour sampling.
	FilterNearest ImageFilter = iota
	// FilterBilinear uses bilinear interpolation.
	FilterBilinear
)

// DrawImage scales img into dst, compositing over existing pixels. Parts of
// dst outside the canvas are clipped.
func (c *Canvas) DrawImage(img image.Image, dst graphics.Rect, filter ImageFilter) {
	if img == nil || dst.Empty() {
		return
	}
	target := image.Rect(dst.X, dst.Y, dst.Right(), dst.Bottom())
	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if filter == FilterBilinear {
		scaler = xdraw.BiLinear
	}
	scaler.Scale(c, target, img, img.Bounds(), xdraw.Over, nil)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundByte(v float64) uint8 {
	return uint8(clampInt(int(math.Round(v)), 0, 255))
}
