package text

import (
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// fallbackRune replaces runes the face has no glyph for.
const fallbackRune = '?'

type glyphKey struct {
	r     rune
	scale int
}

type glyph struct {
	mask    *image.Alpha
	advance int
}

// BitmapFace rasterizes a fixed-size bitmap font and scales glyphs by
// integer factors with nearest-neighbour sampling. Rasterized glyphs are
// cached. A BitmapFace is not safe for concurrent use.
type BitmapFace struct {
	face   font.Face
	ascent int
	height int
	cache  map[glyphKey]glyph
}

// NewBitmapFace returns a face backed by basicfont.Face7x13.
func NewBitmapFace() *BitmapFace {
	return NewBitmapFaceFrom(basicfont.Face7x13)
}

// NewBitmapFaceFrom wraps an arbitrary font.Face. The face is drawn at its
// native size and scaled from there.
func NewBitmapFaceFrom(face font.Face) *BitmapFace {
	m := face.Metrics()
	return &BitmapFace{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: m.Height.Ceil(),
		cache:  make(map[glyphKey]glyph),
	}
}

// LineHeight returns the height of one line at the given scale.
func (f *BitmapFace) LineHeight(scale int) int {
	return f.height * max(scale, 1)
}

func (f *BitmapFace) advance(r rune) (rune, int) {
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		r = fallbackRune
		adv, _ = f.face.GlyphAdvance(r)
	}
	return r, adv.Ceil()
}

// MeasureText implements Rasterizer.
func (f *BitmapFace) MeasureText(s string, scale int) (width, height int) {
	scale = max(scale, 1)
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w := 0
		for _, r := range line {
			_, adv := f.advance(r)
			w += adv
		}
		width = max(width, w)
	}
	return width * scale, len(lines) * f.height * scale
}

// RasterizeGlyph implements Rasterizer.
func (f *BitmapFace) RasterizeGlyph(r rune, scale int) (*image.Alpha, int) {
	scale = max(scale, 1)
	key := glyphKey{r: r, scale: scale}
	if g, ok := f.cache[key]; ok {
		return g.mask, g.advance
	}

	drawn, w := f.advance(r)
	base := image.NewAlpha(image.Rect(0, 0, w, f.height))
	d := &font.Drawer{Dst: base, Src: image.Opaque, Face: f.face, Dot: fixed.P(0, f.ascent)}
	d.DrawString(string(drawn))

	mask := base
	if scale > 1 {
		mask = image.NewAlpha(image.Rect(0, 0, w*scale, f.height*scale))
		xdraw.NearestNeighbor.Scale(mask, mask.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	}
	g := glyph{mask: mask, advance: w * scale}
	f.cache[key] = g
	return g.mask, g.advance
}
