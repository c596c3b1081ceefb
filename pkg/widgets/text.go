package widgets

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
	"github.com/go-fern/fern/pkg/text"
)

// Text draws a string with a bitmap face. The face is scaled by an integer
// factor; the widget sizes itself to the measured text.
//
//	title := NewText(50, 50, "BUTTON DEMO", 3, graphics.White)
//	title.SetUppercase(true)
type Text struct {
	core.Base
	content   string
	display   string
	scale     int
	color     graphics.Color
	uppercase bool
	face      text.Rasterizer
}

// NewText returns a text widget with its top-left corner at (x, y). Scales
// below 1 are treated as 1.
func NewText(x, y int, s string, scale int, col graphics.Color) *Text {
	t := &Text{
		Base:  core.NewBase(x, y, 0, 0),
		scale: max(scale, 1),
		color: col,
		face:  text.Default(),
	}
	t.content = s
	t.refresh()
	return t
}

// Text returns the string as set, before any case transform.
func (t *Text) Text() string { return t.content }

// DisplayText returns the string as drawn.
func (t *Text) DisplayText() string { return t.display }

// SetText replaces the string and resizes the widget.
func (t *Text) SetText(s string) {
	if s == t.content {
		return
	}
	t.content = s
	t.refresh()
}

// SetUppercase draws the text in upper case. The bitmap face only has
// glyphs for a small character set, and labels often read better in caps.
func (t *Text) SetUppercase(upper bool) {
	if t.uppercase != upper {
		t.uppercase = upper
		t.refresh()
	}
}

// Scale returns the integer scale factor.
func (t *Text) Scale() int { return t.scale }

// SetScale changes the scale factor and resizes the widget.
func (t *Text) SetScale(scale int) {
	scale = max(scale, 1)
	if t.scale != scale {
		t.scale = scale
		t.refresh()
	}
}

// Color returns the text color.
func (t *Text) Color() graphics.Color { return t.color }

// SetColor changes the text color.
func (t *Text) SetColor(col graphics.Color) { t.color = col }

// SetFace replaces the rasterizer. Nil restores the default face.
func (t *Text) SetFace(face text.Rasterizer) {
	if face == nil {
		face = text.Default()
	}
	t.face = face
	t.refresh()
}

func (t *Text) refresh() {
	t.display = t.content
	if t.uppercase {
		t.display = cases.Upper(language.Und).String(t.content)
	}
	w, h := t.face.MeasureText(t.display, t.scale)
	t.SetSize(w, h)
}

// Render implements core.Widget.
func (t *Text) Render(c *rendering.Canvas) {
	p := t.Position()
	text.Draw(c, t.face, t.display, p.X, p.Y, t.scale, t.color)
}
