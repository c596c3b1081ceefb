package demo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/widgets"
)

type reportCounter struct{ n int }

func (r *reportCounter) HandleError(*errors.FernError)  { r.n++ }
func (r *reportCounter) HandlePanic(*errors.PanicError) { r.n++ }

func run(t *testing.T, name string, frames int) (*engine.Engine, *engine.HeadlessHost) {
	t.Helper()
	rec := &reportCounter{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	scene, ok := Lookup(name)
	if !ok {
		t.Fatalf("scene %q not registered", name)
	}
	host := engine.NewHeadlessHost("", frames)
	e := engine.New(host, engine.Config{FixedStep: true})
	host.Script(scene.Build(e)...)
	if err := e.RunFrames(frames + 1); err != nil {
		t.Fatal(err)
	}
	if host.Frames() != frames {
		t.Errorf("frames = %d, want %d", host.Frames(), frames)
	}
	if rec.n != 0 {
		t.Errorf("scene %q reported %d errors", name, rec.n)
	}
	return e, host
}

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"counter", "player"}, Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup should fail for unknown scenes")
	}
}

func TestCounterScene(t *testing.T) {
	e, host := run(t, "counter", 12)

	var label *widgets.Text
	for _, root := range e.Manager().Widgets() {
		core.Walk(root, func(w core.Widget, _ int) bool {
			if txt, ok := w.(*widgets.Text); ok && strings.HasPrefix(txt.Text(), "COUNT") {
				label = txt
			}
			return true
		})
	}
	if label == nil {
		t.Fatal("count label not found")
	}
	if label.Text() != "COUNT: 3" {
		t.Errorf("label = %q, want %q", label.Text(), "COUNT: 3")
	}

	img := host.Last()
	if got := img.NRGBAAt(5, 5); got.R != 0x40 || got.G != 0x40 || got.B != 0x40 {
		t.Errorf("background = %v, want dark gray", got)
	}
}

func TestPlayerScene(t *testing.T) {
	e, host := run(t, "player", 3)

	roots := e.Manager().Widgets()
	if len(roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(roots))
	}
	if got := roots[0].Bounds(); got.Width != 800 || got.Height != 600 {
		t.Errorf("root bounds = %v", got)
	}

	var bar *widgets.ProgressBar
	core.Walk(roots[0], func(w core.Widget, _ int) bool {
		if p, ok := w.(*widgets.ProgressBar); ok {
			bar = p
		}
		return true
	})
	if bar == nil {
		t.Fatal("progress bar not found")
	}
	if got := bar.Bounds().Width; got != 760 {
		t.Errorf("progress bar width = %d, want 760", got)
	}
	if v := bar.Value(); v <= 0.35 || v >= 0.4 {
		t.Errorf("progress should be animating, got %v", v)
	}

	// The now-playing bar sits flush with the bottom padding.
	img := host.Last()
	if got := img.NRGBAAt(400, 579); got.R != 0x36 || got.G != 0x45 || got.B != 0x4F {
		t.Errorf("bottom bar missing at (400, 579): %v", got)
	}
}
