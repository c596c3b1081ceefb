// Package engine drives Fern's frame loop.
//
// An Engine owns the root WidgetManager, the frame canvas, and the running
// animations. Each frame it drains dispatched callbacks, polls the host for
// input, dispatches that input, advances animations, lays out dirty roots,
// renders into the canvas, and hands the finished buffer to the host.
//
// The loop is single-threaded. Dispatch is the only method that may be
// called from other goroutines.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-fern/fern/pkg/animation"
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/logging"
	"github.com/go-fern/fern/pkg/rendering"
)

// Host connects an Engine to a window, a test harness, or a file sink.
type Host interface {
	// PollInput returns the input state for the next frame.
	PollInput() input.Snapshot
	// PresentFrame receives the finished frame. buf is only valid for the
	// duration of the call.
	PresentFrame(buf []graphics.Color, width, height int) error
}

// Closer is implemented by hosts that can ask the loop to stop.
type Closer interface {
	ShouldClose() bool
}

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config controls a new Engine.
type Config struct {
	// Width and Height size the canvas. Defaults to 800x600.
	Width  int
	Height int
	// Background clears the canvas at the start of every frame.
	Background graphics.Color
	// FPS is the target frame rate for Run. Defaults to 60.
	FPS int
	// FixedStep advances animations by exactly 1/FPS per frame instead of
	// the measured wall-clock delta. Headless rendering uses it to produce
	// deterministic frames.
	FixedStep bool
	// Clock overrides the wall clock.
	Clock Clock
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
	return c
}

// Engine runs frames against a Host.
type Engine struct {
	host       Host
	cfg        Config
	manager    *core.WidgetManager
	canvas     *rendering.Canvas
	animations *animation.Group
	draw       func(*rendering.Canvas)

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	lastFrame time.Time
	frameID   uint64
	timing    *FrameTimingBuffer

	debug       debugServer
	debugActive atomic.Bool
	pubMu       sync.RWMutex
	published   publishedFrame
}

// New returns an Engine that presents to host.
func New(host Host, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		host:       host,
		cfg:        cfg,
		manager:    core.NewWidgetManager(),
		canvas:     rendering.NewCanvas(cfg.Width, cfg.Height),
		animations: &animation.Group{},
		timing:     NewFrameTimingBuffer(cfg.FPS),
	}
}

// Manager returns the root widget manager.
func (e *Engine) Manager() *core.WidgetManager {
	return e.manager
}

// Canvas returns the frame canvas.
func (e *Engine) Canvas() *rendering.Canvas {
	return e.canvas
}

// Animations returns the group advanced once per frame.
func (e *Engine) Animations() *animation.Group {
	return e.animations
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetBackground changes the clear color used from the next frame.
func (e *Engine) SetBackground(col graphics.Color) {
	e.cfg.Background = col
}

// SetDrawCallback installs fn to paint directly onto the canvas after it is
// cleared and before widgets render. Pass nil to remove it.
func (e *Engine) SetDrawCallback(fn func(*rendering.Canvas)) {
	e.draw = fn
}

// Resize changes the canvas dimensions. Every root is laid out again on the
// next frame.
func (e *Engine) Resize(width, height int) {
	e.canvas.Resize(width, height)
	e.cfg.Width = e.canvas.Width()
	e.cfg.Height = e.canvas.Height()
}

// Dispatch queues fn to run on the frame loop at the start of the next
// frame. It is safe to call from any goroutine.
func (e *Engine) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	e.dispatchMu.Lock()
	e.dispatchQueue = append(e.dispatchQueue, fn)
	e.dispatchMu.Unlock()
}

func (e *Engine) drainDispatchQueue() []func() {
	e.dispatchMu.Lock()
	callbacks := e.dispatchQueue
	e.dispatchQueue = nil
	e.dispatchMu.Unlock()
	return callbacks
}

// FrameID returns the number of frames completed.
func (e *Engine) FrameID() uint64 {
	return e.frameID
}

// Frame runs one complete frame. A PresentFrame failure is reported to the
// error handler and returned; the engine stays usable.
func (e *Engine) Frame() error {
	start := e.cfg.Clock.Now()
	dt := e.delta(start)

	for _, fn := range e.drainDispatchQueue() {
		errors.Guard("engine.Dispatch", "", fn)
	}

	in := e.host.PollInput()
	e.manager.DispatchInput(in)
	e.animations.Update(float32(dt.Seconds()))

	viewport := graphics.Size{Width: e.canvas.Width(), Height: e.canvas.Height()}
	e.manager.LayoutAll(viewport)

	e.canvas.Clear(e.cfg.Background)
	if e.draw != nil {
		errors.Guard("engine.DrawCallback", "", func() {
			e.draw(e.canvas)
		})
	}
	e.manager.RenderAll(e.canvas)

	var presentErr error
	if err := e.host.PresentFrame(e.canvas.Buffer(), viewport.Width, viewport.Height); err != nil {
		fe := &errors.FernError{Op: "engine.Frame", Kind: errors.KindHost, Err: err}
		errors.Report(fe)
		presentErr = fe
	}

	e.frameID++
	if e.frameID > 1 {
		e.timing.Add(dt)
	}
	if e.debugActive.Load() {
		e.publish(viewport)
	}
	logging.Logger().Debug("frame", "id", e.frameID, "dt", dt, "roots", e.manager.Len())
	return presentErr
}

func (e *Engine) delta(now time.Time) time.Duration {
	step := time.Second / time.Duration(e.cfg.FPS)
	if e.cfg.FixedStep {
		if e.frameID == 0 {
			return 0
		}
		return step
	}
	if e.lastFrame.IsZero() {
		e.lastFrame = now
		return 0
	}
	dt := now.Sub(e.lastFrame)
	e.lastFrame = now
	return max(dt, 0)
}

// Run drives frames at the configured rate until ctx is cancelled or the
// host reports that it should close. Host errors are logged and the loop
// continues. It returns ctx.Err() on cancellation and nil on close.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.FPS))
	defer ticker.Stop()

	log := logging.Logger()
	log.Info("engine started", "width", e.cfg.Width, "height", e.cfg.Height, "fps", e.cfg.FPS)
	defer func() {
		log.Info("engine stopped", "frames", e.frameID)
	}()

	closer, _ := e.host.(Closer)
	for {
		if closer != nil && closer.ShouldClose() {
			return nil
		}
		if err := e.Frame(); err != nil {
			log.Warn("present failed", "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunFrames runs up to n frames back to back, stopping early if the host
// reports that it should close. It returns the first host error.
func (e *Engine) RunFrames(n int) error {
	closer, _ := e.host.(Closer)
	var first error
	for range n {
		if closer != nil && closer.ShouldClose() {
			break
		}
		if err := e.Frame(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// HitTest returns the visible widgets under (x, y), topmost first.
func (e *Engine) HitTest(x, y int) []core.Widget {
	return HitTest(e.manager.Widgets(), x, y)
}
