// Package animation interpolates values over time.
//
// A Tween advances by an explicit delta each frame; nothing runs on its
// own. The engine owns a Group and advances it once per frame, so widgets
// only need to add their tweens to it:
//
//	tw := animation.TweenColor(graphics.Green, graphics.LightGreen, 150*time.Millisecond, ease.OutQuad)
//	tw.OnUpdate(func(c graphics.Color) { button.SetFill(c) })
//	group.Add(tw)
//
// Easing functions come from github.com/tanema/gween/ease.
package animation

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-fern/fern/pkg/graphics"
)

// Status reports where a tween is in its run.
type Status int

const (
	// StatusRunning means the tween has time left.
	StatusRunning Status = iota
	// StatusCompleted means the tween reached its end value.
	StatusCompleted
	// StatusStopped means the tween was stopped before completing.
	StatusStopped
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Animation is anything a Group can advance.
type Animation interface {
	// Update advances the animation by dt seconds and reports whether it
	// has finished.
	Update(dt float32) bool
}

// Tween interpolates between Begin and End. Progress runs from 0 to 1 over
// the duration and is shaped by the easing function; Lerp maps the eased
// progress to a value.
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Lerp interpolates between a and b. Eased progress may leave [0, 1]
	// for overshooting curves.
	Lerp func(a, b T, t float64) T

	progress   *gween.Tween
	value      T
	status     Status
	onUpdate   func(T)
	onComplete func()
}

// NewTween returns a tween over duration using the easing function. A nil
// easing function is linear.
func NewTween[T any](begin, end T, duration time.Duration, fn ease.TweenFunc, lerp func(a, b T, t float64) T) *Tween[T] {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween[T]{
		Begin:    begin,
		End:      end,
		Lerp:     lerp,
		progress: gween.New(0, 1, float32(duration.Seconds()), fn),
		value:    begin,
	}
}

// OnUpdate sets a callback invoked with the new value after every Update.
func (tw *Tween[T]) OnUpdate(fn func(T)) *Tween[T] {
	tw.onUpdate = fn
	return tw
}

// OnComplete sets a callback invoked once when the tween finishes.
func (tw *Tween[T]) OnComplete(fn func()) *Tween[T] {
	tw.onComplete = fn
	return tw
}

// Evaluate returns the interpolated value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Update implements Animation.
func (tw *Tween[T]) Update(dt float32) bool {
	if tw.status != StatusRunning {
		return true
	}
	p, finished := tw.progress.Update(dt)
	if finished {
		tw.value = tw.End
		tw.status = StatusCompleted
	} else {
		tw.value = tw.Evaluate(float64(p))
	}
	if tw.onUpdate != nil {
		tw.onUpdate(tw.value)
	}
	if finished && tw.onComplete != nil {
		tw.onComplete()
	}
	return finished
}

// Value returns the most recent value.
func (tw *Tween[T]) Value() T { return tw.value }

// Status returns the tween's status.
func (tw *Tween[T]) Status() Status { return tw.status }

// Done reports whether the tween will not change any more.
func (tw *Tween[T]) Done() bool { return tw.status != StatusRunning }

// Stop freezes the tween at its current value. Callbacks are not invoked.
func (tw *Tween[T]) Stop() {
	if tw.status == StatusRunning {
		tw.status = StatusStopped
	}
}

// Reset rewinds the tween to Begin so it can run again.
func (tw *Tween[T]) Reset() {
	tw.progress.Reset()
	tw.value = tw.Begin
	tw.status = StatusRunning
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates every channel of two colors.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	return graphics.Lerp(a, b, t)
}

// ColorTween animates a color.
type ColorTween = Tween[graphics.Color]

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64, duration time.Duration, fn ease.TweenFunc) *Tween[float64] {
	return NewTween(begin, end, duration, fn, LerpFloat64)
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color, duration time.Duration, fn ease.TweenFunc) *ColorTween {
	return NewTween(begin, end, duration, fn, LerpColor)
}
