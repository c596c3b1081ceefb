package testing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-fern/fern/pkg/animation"
	"github.com/go-fern/fern/pkg/core"
	fernerrors "github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

const (
	// DefaultTestWidth is the default width of the test canvas.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test canvas.
	DefaultTestHeight = 600
	// FrameDuration is how far the fake clock moves per Pump.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations or input still pending")

// WidgetTester drives a real engine against a FakeHost and FakeClock.
// While it is alive it also captures every error and panic reported
// through the errors package.
type WidgetTester struct {
	engine   *engine.Engine
	host     *FakeHost
	clock    *FakeClock
	recorder *Recorder
}

// NewWidgetTester creates a tester with a DefaultTestWidth x
// DefaultTestHeight black canvas. Call Cleanup when done, or use
// NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	host := NewFakeHost()
	clock := NewFakeClock()
	t := &WidgetTester{
		engine: engine.New(host, engine.Config{
			Width:      DefaultTestWidth,
			Height:     DefaultTestHeight,
			Background: graphics.Black,
			Clock:      clock,
		}),
		host:     host,
		clock:    clock,
		recorder: &Recorder{},
	}
	fernerrors.SetHandler(t.recorder)
	return t
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the default error handler and clears the roots.
func (t *WidgetTester) Cleanup() {
	t.engine.Manager().Clear()
	fernerrors.SetHandler(nil)
}

// Engine returns the engine under test.
func (t *WidgetTester) Engine() *engine.Engine { return t.engine }

// Host returns the fake host.
func (t *WidgetTester) Host() *FakeHost { return t.host }

// Clock returns the fake clock.
func (t *WidgetTester) Clock() *FakeClock { return t.clock }

// Canvas returns the frame canvas.
func (t *WidgetTester) Canvas() *rendering.Canvas { return t.engine.Canvas() }

// Animations returns the engine's animation group.
func (t *WidgetTester) Animations() *animation.Group { return t.engine.Animations() }

// Recorder returns the errors and panics reported so far.
func (t *WidgetTester) Recorder() *Recorder { return t.recorder }

// SetSize resizes the canvas; the next Pump lays out every root again.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.engine.Resize(size.Width, size.Height)
}

// PumpWidget replaces the roots with widgets and runs one frame. A widget
// the manager rejects as a root stops the pump with its error.
func (t *WidgetTester) PumpWidget(widgets ...core.Widget) error {
	m := t.engine.Manager()
	m.Clear()
	for _, w := range widgets {
		if err := m.AddWidget(w); err != nil {
			return err
		}
	}
	return t.Pump()
}

// Pump advances the clock by FrameDuration and runs one frame.
func (t *WidgetTester) Pump() error {
	t.clock.Advance(FrameDuration)
	return t.engine.Frame()
}

// PumpFor runs as many frames as fit in d, rounding up.
func (t *WidgetTester) PumpFor(d time.Duration) error {
	n := int((d + FrameDuration - 1) / FrameDuration)
	for range n {
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle pumps until no animation runs and no input is queued, or
// returns ErrSettleTimeout once timeout of fake time has elapsed.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if t.engine.Animations().Len() == 0 && t.host.Pending() == 0 {
			return nil
		}
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Dispatch queues fn for the next frame, as engine.Dispatch does.
func (t *WidgetTester) Dispatch(fn func()) {
	t.engine.Dispatch(fn)
}

// Find evaluates finder against the current roots.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{widgets: finder.Evaluate(t.engine.Manager().Widgets()), finder: finder}
}

// Pixel returns a pixel of the last presented frame.
func (t *WidgetTester) Pixel(x, y int) graphics.Color {
	c, _ := t.host.Pixel(x, y)
	return c
}

// Recorder is an errors.ErrorHandler that keeps everything it receives.
type Recorder struct {
	mu     sync.Mutex
	errs   []*fernerrors.FernError
	panics []*fernerrors.PanicError
}

// HandleError implements errors.ErrorHandler.
func (r *Recorder) HandleError(err *fernerrors.FernError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic implements errors.ErrorHandler.
func (r *Recorder) HandlePanic(err *fernerrors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors in order.
func (r *Recorder) Errors() []*fernerrors.FernError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*fernerrors.FernError(nil), r.errs...)
}

// Panics returns the reported panics in order.
func (r *Recorder) Panics() []*fernerrors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*fernerrors.PanicError(nil), r.panics...)
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}
