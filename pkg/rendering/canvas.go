// Package rendering implements Fern's software canvas: a flat row-major
// buffer of packed colors with bounds-checked rasterization primitives and
// compositing effects.
//
// Every primitive clips to the canvas. Out-of-range coordinates are never an
// error: writes are dropped and reads return graphics.Transparent.
package rendering

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/go-fern/fern/pkg/graphics"
)

// Canvas is a rectangular pixel buffer.
//
// Canvas implements draw.Image, so golang.org/x/image/draw and image/draw can
// composite directly into it.
type Canvas struct {
	width  int
	height int
	buf    []graphics.Color
}

// NewCanvas creates a canvas of the given dimensions, cleared to
// transparent. Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		buf:    make([]graphics.Color, width*height),
	}
}

// NewCanvasFromBuffer wraps an existing row-major buffer. The buffer is
// used in place; it must hold at least width*height colors.
func NewCanvasFromBuffer(buf []graphics.Color, width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	if len(buf) < width*height {
		grown := make([]graphics.Color, width*height)
		copy(grown, buf)
		buf = grown
	}
	return &Canvas{width: width, height: height, buf: buf[:width*height]}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Buffer returns the row-major pixel buffer. The slice aliases the canvas
// storage; hosts read it in PresentFrame.
func (c *Canvas) Buffer() []graphics.Color {
	return c.buf
}

// Resize reallocates the buffer when the dimensions change. Contents are
// not preserved.
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.buf = make([]graphics.Color, width*height)
}

// InBounds reports whether (x, y) addresses a pixel.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetPixel writes a single pixel. Out-of-bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int, col graphics.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.buf[y*c.width+x] = col
}

// GetPixel reads a single pixel. Out-of-bounds reads return
// graphics.Transparent.
func (c *Canvas) GetPixel(x, y int) graphics.Color {
	if !c.InBounds(x, y) {
		return graphics.Transparent
	}
	return c.buf[y*c.width+x]
}

// BlendPixel composites col over the existing pixel using col's own alpha.
func (c *Canvas) BlendPixel(x, y int, col graphics.Color) {
	if !c.InBounds(x, y) {
		return
	}
	i := y*c.width + x
	c.buf[i] = graphics.Over(c.buf[i], col)
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col graphics.Color) {
	for i := range c.buf {
		c.buf[i] = col
	}
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y).NRGBA()
}

// Set implements draw.Image.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, graphics.FromColor(col))
}

// ToImage copies the canvas into a new image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, col := range c.buf {
		j := i * 4
		img.Pix[j+0] = col.R()
		img.Pix[j+1] = col.G()
		img.Pix[j+2] = col.B()
		img.Pix[j+3] = col.A()
	}
	return img
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// clipRect intersects r with the canvas bounds.
func (c *Canvas) clipRect(r graphics.Rect) graphics.Rect {
	return r.Intersect(graphics.Rect{Width: c.width, Height: c.height})
}
