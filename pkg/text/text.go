// Package text turns strings into glyph coverage masks and draws them onto
// a rendering.Canvas.
//
// Fern ships a single fixed bitmap face, drawn with an integer scale
// factor. Hosts that need other fonts implement Rasterizer.
package text

import (
	"image"
	"strings"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

// Rasterizer measures strings and produces glyph masks.
type Rasterizer interface {
	// MeasureText returns the size of s at the given scale. Lines are
	// separated by '\n'.
	MeasureText(s string, scale int) (width, height int)
	// RasterizeGlyph returns the coverage mask for r at the given scale and
	// the horizontal advance to the next glyph. The mask's height is the
	// line height.
	RasterizeGlyph(r rune, scale int) (mask *image.Alpha, advance int)
}

var defaultFace = NewBitmapFace()

// Default returns the shared bitmap face.
func Default() Rasterizer {
	return defaultFace
}

// Draw renders s with its top-left corner at (x, y). A nil rasterizer uses
// Default. Each '\n' starts a new line one line height lower.
func Draw(c *rendering.Canvas, r Rasterizer, s string, x, y, scale int, col graphics.Color) {
	if c == nil || s == "" || col.A() == 0 {
		return
	}
	if r == nil {
		r = Default()
	}
	_, lineHeight := r.MeasureText(" ", scale)
	for i, line := range strings.Split(s, "\n") {
		pen := x
		top := y + i*lineHeight
		for _, ch := range line {
			mask, advance := r.RasterizeGlyph(ch, scale)
			c.DrawMask(mask, pen, top, col)
			pen += advance
		}
	}
}
