package widgets

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-fern/fern/pkg/animation"
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

// ProgressBar draws a horizontal track with a fill proportional to a value
// in [0, 1].
type ProgressBar struct {
	core.Base
	value float64
	track graphics.Color
	fill  graphics.Color
	tween *animation.Tween[float64]
}

// NewProgressBar returns an empty bar at (x, y).
func NewProgressBar(x, y, width, height int, track, fill graphics.Color) *ProgressBar {
	return &ProgressBar{Base: core.NewBase(x, y, width, height), track: track, fill: fill}
}

// Value returns the current value.
func (p *ProgressBar) Value() float64 { return p.value }

// SetValue sets the value immediately, clamped to [0, 1]. A running
// animation is stopped.
func (p *ProgressBar) SetValue(v float64) {
	if p.tween != nil {
		p.tween.Stop()
		p.tween = nil
	}
	p.value = clampUnit(v)
}

// AnimateTo eases the value to v over d using a tween added to group.
func (p *ProgressBar) AnimateTo(v float64, group *animation.Group, d time.Duration) {
	target := clampUnit(v)
	if group == nil || d <= 0 {
		p.SetValue(target)
		return
	}
	if p.tween != nil {
		p.tween.Stop()
	}
	p.tween = animation.TweenFloat64(p.value, target, d, ease.InOutQuad).
		OnUpdate(func(v float64) { p.value = clampUnit(v) })
	group.Add(p.tween)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}

// Render implements core.Widget.
func (p *ProgressBar) Render(c *rendering.Canvas) {
	r := p.Bounds()
	c.FillRect(r, p.track)
	filled := r
	filled.Width = int(float64(r.Width)*p.value + 0.5)
	c.FillRect(filled, p.fill)
}
