package widgets

import (
	"image"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/rendering"
)

// Image draws an image.Image scaled to its bounds.
type Image struct {
	core.Base
	img    image.Image
	filter rendering.ImageFilter
}

// NewImage returns an image widget at (x, y). A zero width or height takes
// the image's own dimension.
func NewImage(x, y, width, height int, img image.Image) *Image {
	if img != nil {
		b := img.Bounds()
		if width <= 0 {
			width = b.Dx()
		}
		if height <= 0 {
			height = b.Dy()
		}
	}
	return &Image{Base: core.NewBase(x, y, width, height), img: img}
}

// SetImage replaces the source image.
func (im *Image) SetImage(img image.Image) { im.img = img }

// SetFilter selects nearest-neighbour or bilinear scaling.
func (im *Image) SetFilter(f rendering.ImageFilter) { im.filter = f }

// Render implements core.Widget.
func (im *Image) Render(c *rendering.Canvas) {
	c.DrawImage(im.img, im.Bounds(), im.filter)
}
