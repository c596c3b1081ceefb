package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/rendering"
	"github.com/go-fern/fern/pkg/signal"
	"github.com/go-fern/fern/pkg/text"
)

// TextInputStyle holds the colors of a TextInput.
type TextInputStyle struct {
	Background  graphics.Color
	Border      graphics.Color
	FocusBorder graphics.Color
	Text        graphics.Color
	Placeholder graphics.Color
}

// DefaultTextInputStyle returns a dark field with a sky blue focus border.
func DefaultTextInputStyle() TextInputStyle {
	return TextInputStyle{
		Background:  graphics.Charcoal,
		Border:      graphics.Gray,
		FocusBorder: graphics.SkyBlue,
		Text:        graphics.White,
		Placeholder: graphics.DarkGray,
	}
}

// textInputPadding is the gap between the border and the text.
const textInputPadding = 4

// TextInput is a single-line text field.
//
// A click inside focuses the field and a click elsewhere blurs it. While
// focused, typed text is appended, Backspace deletes the last grapheme cluster,
// and Enter emits OnSubmit. Every edit emits OnChange with the new text.
type TextInput struct {
	core.Base
	content     string
	placeholder string
	maxLength   int
	scale       int
	focused     bool
	style       TextInputStyle
	face        text.Rasterizer

	OnChange signal.Signal[string]
	OnSubmit signal.Signal[string]
	OnFocus  signal.Signal[bool]
}

// NewTextInput returns an empty field at (x, y).
func NewTextInput(x, y, width, height int) *TextInput {
	return &TextInput{
		Base:  core.NewBase(x, y, width, height),
		scale: 1,
		style: DefaultTextInputStyle(),
		face:  text.Default(),
	}
}

// Text returns the current contents.
func (t *TextInput) Text() string { return t.content }

// SetText replaces the contents without emitting OnChange.
func (t *TextInput) SetText(s string) { t.content = t.truncate(s) }

// SetPlaceholder sets the text drawn while the field is empty.
func (t *TextInput) SetPlaceholder(s string) { t.placeholder = s }

// SetMaxLength limits the number of characters. Zero means no limit.
func (t *TextInput) SetMaxLength(n int) {
	t.maxLength = max(n, 0)
	t.content = t.truncate(t.content)
}

// SetScale sets the integer text scale.
func (t *TextInput) SetScale(scale int) { t.scale = max(scale, 1) }

// SetStyle replaces the colors.
func (t *TextInput) SetStyle(style TextInputStyle) { t.style = style }

// Focused reports whether the field receives typed text.
func (t *TextInput) Focused() bool { return t.focused }

// SetFocused focuses or blurs the field.
func (t *TextInput) SetFocused(focused bool) {
	if t.focused != focused {
		t.focused = focused
		t.OnFocus.Emit(focused)
	}
}

func (t *TextInput) truncate(s string) string {
	if t.maxLength == 0 || utf8.RuneCountInString(s) <= t.maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:t.maxLength])
}

// HandleInput implements core.Widget.
func (t *TextInput) HandleInput(in input.Snapshot) bool {
	consumed := false
	if in.MouseClicked {
		inside := in.Over(t.Bounds())
		t.SetFocused(inside)
		consumed = inside
	}
	if !t.focused {
		return consumed
	}

	before := t.content
	if typed := printable(in.TextInput); typed != "" {
		t.content = t.truncate(t.content + typed)
		consumed = true
	}
	if in.Pressed(input.KeyBackspace) {
		t.content = dropLastGrapheme(t.content)
		consumed = true
	}
	if t.content != before {
		t.OnChange.Emit(t.content)
	}
	if in.Pressed(input.KeyEnter) {
		t.OnSubmit.Emit(t.content)
		consumed = true
	}
	return consumed
}

// dropLastGrapheme removes the final user-perceived character, so a base
// letter and its combining marks go together.
func dropLastGrapheme(s string) string {
	end, state := 0, -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if rest == "" {
			break
		}
		end += len(cluster)
	}
	return s[:end]
}

func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Render implements core.Widget.
func (t *TextInput) Render(c *rendering.Canvas) {
	r := t.Bounds()
	c.FillRect(r, t.style.Background)
	border := t.style.Border
	if t.focused {
		border = t.style.FocusBorder
	}
	c.Rect(r.X, r.Y, r.Width, r.Height, border, false)

	s, col := t.content, t.style.Text
	if s == "" && !t.focused {
		s, col = t.placeholder, t.style.Placeholder
	}
	w, h := t.face.MeasureText(s, t.scale)
	x := r.X + textInputPadding
	y := r.Y + (r.Height-h)/2
	text.Draw(c, t.face, s, x, y, t.scale, col)
	if t.focused {
		caret := x + w
		c.Line(caret, y, caret, y+h-1, t.style.Text)
	}
}
