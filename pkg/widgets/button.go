package widgets

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-fern/fern/pkg/animation"
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/rendering"
	"github.com/go-fern/fern/pkg/signal"
	"github.com/go-fern/fern/pkg/text"
)

// ButtonConfig describes a button's geometry, colors, and label.
type ButtonConfig struct {
	X, Y          int
	Width, Height int
	// NormalColor is the fill when idle.
	NormalColor graphics.Color
	// HoverColor is the fill while the pointer is over the button.
	HoverColor graphics.Color
	// PressColor is the fill while the button is held.
	PressColor graphics.Color
	// Label is drawn centred. Empty draws no text.
	Label string
	// TextScale is the integer scale of the label. Defaults to 1.
	TextScale int
	// TextColor is the label color.
	TextColor graphics.Color
}

// DefaultButtonConfig returns a 200x50 green button with a white label.
func DefaultButtonConfig(label string) ButtonConfig {
	return ButtonConfig{
		Width:       200,
		Height:      50,
		NormalColor: graphics.Green,
		HoverColor:  graphics.LightGreen,
		PressColor:  graphics.DarkGreen,
		Label:       label,
		TextScale:   2,
		TextColor:   graphics.White,
	}
}

// Button is a clickable rectangle with a label.
//
// Button emits OnClick when the primary button goes down over it,
// OnHover when the pointer enters (true) or leaves (false), and OnPress
// when the held state changes. Clicks and presses over the button are
// consumed; hovering is not. When a widget above consumes the input first,
// the button loses hover and press.
//
//	b := NewButton(DefaultButtonConfig("CLICK ME"))
//	b.OnClick.Connect(func(struct{}) { count++ })
type Button struct {
	core.Base
	cfg     ButtonConfig
	hovered bool
	pressed bool
	reached bool
	fill    graphics.Color
	face    text.Rasterizer

	animator   *animation.Group
	transition time.Duration
	tween      *animation.ColorTween

	OnClick signal.Signal[struct{}]
	OnHover signal.Signal[bool]
	OnPress signal.Signal[bool]
}

// NewButton returns a button from cfg.
func NewButton(cfg ButtonConfig) *Button {
	cfg.TextScale = max(cfg.TextScale, 1)
	return &Button{
		Base: core.NewBase(cfg.X, cfg.Y, cfg.Width, cfg.Height),
		cfg:  cfg,
		fill: cfg.NormalColor,
		face: text.Default(),
	}
}

// ButtonOf creates a default-styled button with the given label and click
// handler.
func ButtonOf(label string, onClick func()) *Button {
	b := NewButton(DefaultButtonConfig(label))
	if onClick != nil {
		b.OnClick.Connect(func(struct{}) { onClick() })
	}
	return b
}

// Config returns the button's configuration.
func (b *Button) Config() ButtonConfig { return b.cfg }

// Label returns the label text.
func (b *Button) Label() string { return b.cfg.Label }

// SetLabel changes the label text.
func (b *Button) SetLabel(label string) { b.cfg.Label = label }

// SetColors changes the three state colors.
func (b *Button) SetColors(normal, hover, press graphics.Color) {
	b.cfg.NormalColor, b.cfg.HoverColor, b.cfg.PressColor = normal, hover, press
	b.setFill(b.targetColor(), false)
}

// Hovered reports whether the pointer was over the button last frame.
func (b *Button) Hovered() bool { return b.hovered }

// Pressed reports whether the button was held last frame.
func (b *Button) Pressed() bool { return b.pressed }

// FillColor returns the current fill, which may be mid-transition.
func (b *Button) FillColor() graphics.Color { return b.fill }

// AnimateTransitions fades between state colors over d using tweens added
// to group. A nil group or non-positive d switches colors instantly.
func (b *Button) AnimateTransitions(group *animation.Group, d time.Duration) {
	b.animator = group
	b.transition = d
}

func (b *Button) targetColor() graphics.Color {
	switch {
	case b.pressed:
		return b.cfg.PressColor
	case b.hovered:
		return b.cfg.HoverColor
	default:
		return b.cfg.NormalColor
	}
}

func (b *Button) setFill(target graphics.Color, animate bool) {
	if b.tween != nil {
		b.tween.Stop()
		if b.animator != nil {
			b.animator.Remove(b.tween)
		}
		b.tween = nil
	}
	if !animate || b.animator == nil || b.transition <= 0 || b.fill == target {
		b.fill = target
		return
	}
	b.tween = animation.TweenColor(b.fill, target, b.transition, ease.OutQuad).
		OnUpdate(func(c graphics.Color) { b.fill = c })
	b.animator.Add(b.tween)
}

// HandleInput implements core.Widget.
func (b *Button) HandleInput(in input.Snapshot) bool {
	b.reached = true
	over := in.Over(b.Bounds())
	b.setState(over, over && in.MouseDown)

	if over && in.MouseClicked {
		b.OnClick.Emit(struct{}{})
	}
	return over && (in.MouseClicked || in.MouseDown)
}

// SettleHover implements core.HoverTracker. A button that the last dispatch
// did not reach, because a widget above it consumed the input, is no longer
// hovered or pressed.
func (b *Button) SettleHover() {
	if !b.reached {
		b.setState(false, false)
	}
	b.reached = false
}

func (b *Button) setState(over, pressed bool) {
	changed := false
	if over != b.hovered {
		b.hovered = over
		changed = true
		b.OnHover.Emit(over)
	}
	if pressed != b.pressed {
		b.pressed = pressed
		changed = true
		b.OnPress.Emit(pressed)
	}
	if changed {
		b.setFill(b.targetColor(), true)
	}
}

// Render implements core.Widget.
func (b *Button) Render(c *rendering.Canvas) {
	r := b.Bounds()
	c.FillRect(r, b.fill)
	if b.cfg.Label == "" {
		return
	}
	w, h := b.face.MeasureText(b.cfg.Label, b.cfg.TextScale)
	x := r.X + (r.Width-w)/2
	y := r.Y + (r.Height-h)/2
	text.Draw(c, b.face, b.cfg.Label, x, y, b.cfg.TextScale, b.cfg.TextColor)
}
