package testing

import (
	"fmt"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
)

// center returns the middle of the first widget matched by finder.
func (t *WidgetTester) center(op string, finder Finder) (graphics.Point, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Point{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	b := result.First().Bounds()
	return graphics.Pt(b.X+b.Width/2, b.Y+b.Height/2), nil
}

// Tap clicks the centre of the first widget matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	p, err := t.center("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(p)
}

// TapAt presses the primary button at p in one frame and releases it in
// the next.
func (t *WidgetTester) TapAt(p graphics.Point) error {
	t.host.Queue(
		input.Snapshot{MouseX: p.X, MouseY: p.Y, MouseDown: true, MouseClicked: true},
		input.Snapshot{MouseX: p.X, MouseY: p.Y},
	)
	if err := t.Pump(); err != nil {
		return err
	}
	return t.Pump()
}

// Hover moves the pointer over the first widget matched by finder.
func (t *WidgetTester) Hover(finder Finder) error {
	p, err := t.center("Hover", finder)
	if err != nil {
		return err
	}
	return t.MoveTo(p)
}

// MoveTo moves the pointer to p and runs one frame.
func (t *WidgetTester) MoveTo(p graphics.Point) error {
	t.host.Queue(input.Snapshot{MouseX: p.X, MouseY: p.Y})
	return t.Pump()
}

// EnterText delivers s as typed text in one frame, at the current pointer
// position.
func (t *WidgetTester) EnterText(s string) error {
	snap := t.host.PollIdle()
	snap.TextInput = s
	t.host.Queue(snap)
	return t.Pump()
}

// PressKey delivers a single key press in one frame.
func (t *WidgetTester) PressKey(k input.Key) error {
	snap := t.host.PollIdle()
	snap.LastKey = k
	snap.KeyPressed = true
	t.host.Queue(snap)
	return t.Pump()
}
