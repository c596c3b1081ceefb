package input

import (
	"slices"
	"strings"
)

// Tracker accumulates raw host events between frames and produces one
// Snapshot per frame with edge-triggered click and key flags.
//
// Typical host loop:
//
//	tracker.MouseMove(x, y)   // from platform callbacks
//	tracker.MouseButton(true)
//	...
//	snap := tracker.Snapshot() // once per frame, then events start afresh
type Tracker struct {
	mouseX, mouseY int
	mouseDown      bool
	clicked        bool
	lastKey        Key
	keyPressed     bool
	text           strings.Builder
	held           map[Key]bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{held: make(map[Key]bool)}
}

// MouseMove records the pointer position.
func (t *Tracker) MouseMove(x, y int) {
	t.mouseX, t.mouseY = x, y
}

// MouseButton records a primary button transition. A press while already
// down is not a new click.
func (t *Tracker) MouseButton(down bool) {
	if down && !t.mouseDown {
		t.clicked = true
	}
	t.mouseDown = down
}

// KeyDown records a key press. Auto-repeat (KeyDown while already held)
// still counts as a press so held backspace keeps deleting.
func (t *Tracker) KeyDown(k Key) {
	if t.held == nil {
		t.held = make(map[Key]bool)
	}
	t.held[k] = true
	t.lastKey = k
	t.keyPressed = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(k Key) {
	delete(t.held, k)
}

// Text appends typed text for this frame.
func (t *Tracker) Text(s string) {
	t.text.WriteString(s)
}

// Snapshot returns the state for the frame and clears the per-frame edges.
func (t *Tracker) Snapshot() Snapshot {
	held := make([]Key, 0, len(t.held))
	for k := range t.held {
		held = append(held, k)
	}
	slices.Sort(held)

	s := Snapshot{
		MouseX:       t.mouseX,
		MouseY:       t.mouseY,
		MouseDown:    t.mouseDown,
		MouseClicked: t.clicked,
		LastKey:      t.lastKey,
		KeyPressed:   t.keyPressed,
		TextInput:    t.text.String(),
		HeldKeys:     held,
	}
	t.clicked = false
	t.keyPressed = false
	t.text.Reset()
	return s
}
