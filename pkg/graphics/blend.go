package graphics

import "math"

// Blend interpolates from bg toward fg by alpha (0 keeps bg, 1 yields fg).
// All four channels, alpha included, use straight (non-premultiplied)
// linear interpolation with rounding, so Blend(c, c, a) == c for every a.
// Alpha outside [0, 1] is clamped.
func Blend(bg, fg Color, alpha float64) Color {
	t := clamp01(alpha)
	return RGBA8(
		lerpByte(bg.R(), fg.R(), t),
		lerpByte(bg.G(), fg.G(), t),
		lerpByte(bg.B(), fg.B(), t),
		lerpByte(bg.A(), fg.A(), t),
	)
}

// Lerp is Blend with the argument order used by gradients and tweens.
func Lerp(from, to Color, t float64) Color {
	return Blend(from, to, t)
}

// Over composites src onto dst using src's own alpha (source-over, straight
// alpha). The result alpha is srcA + dstA*(1-srcA).
func Over(dst, src Color) Color {
	sa := src.A()
	switch sa {
	case 0xFF:
		return src
	case 0:
		return dst
	}
	as := float64(sa) / maxByte
	ad := float64(dst.A()) / maxByte
	outA := as + ad*(1-as)
	if outA <= 0 {
		return Transparent
	}
	ch := func(s, d uint8) uint8 {
		v := (float64(s)*as + float64(d)*ad*(1-as)) / outA
		return uint8(math.Round(clampByte(v)))
	}
	return RGBA8(
		ch(src.R(), dst.R()),
		ch(src.G(), dst.G()),
		ch(src.B(), dst.B()),
		uint8(math.Round(outA*maxByte)),
	)
}

// Scale multiplies every channel's contribution by the coverage value
// (0-255) by scaling alpha only. It is used when compositing glyph masks.
func (c Color) Scale(coverage uint8) Color {
	a := uint32(c.A()) * uint32(coverage) / 255
	return c.WithAlpha8(uint8(a))
}

func lerpByte(a, b uint8, t float64) uint8 {
	if a == b {
		return a
	}
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(clampByte(v)))
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxByte {
		return maxByte
	}
	return v
}
