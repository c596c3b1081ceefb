// Package input defines the per-frame input snapshot that the host hands to
// the widget tree.
//
// A Snapshot is a plain value threaded through dispatch as a parameter;
// there is no process-wide "current input". Hosts that receive raw events
// build snapshots with a Tracker.
package input

import (
	"fmt"
	"slices"

	"github.com/go-fern/fern/pkg/graphics"
)

// Key identifies a keyboard key. Printable keys use their upper-case rune
// value; named keys use the constants below.
type Key int

const (
	KeyNone Key = 0

	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32

	KeyLeft Key = iota + 0x100
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyShift
	KeyControl
	KeyAlt
)

// String returns a readable key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyDelete:
		return "delete"
	case KeyShift:
		return "shift"
	case KeyControl:
		return "control"
	case KeyAlt:
		return "alt"
	}
	if k > KeySpace && k < 0x7F {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Snapshot is the input state for one frame.
type Snapshot struct {
	MouseX int
	MouseY int
	// MouseDown reports whether the primary button is held.
	MouseDown bool
	// MouseClicked is true only in the frame the primary button went down.
	MouseClicked bool
	// LastKey is the most recent key pressed.
	LastKey Key
	// KeyPressed is true only in the frame LastKey went down.
	KeyPressed bool
	// TextInput holds the text typed during this frame.
	TextInput string
	// HeldKeys lists keys currently held down, sorted ascending.
	HeldKeys []Key
}

// Mouse returns the pointer position.
func (s Snapshot) Mouse() graphics.Point {
	return graphics.Point{X: s.MouseX, Y: s.MouseY}
}

// IsHeld reports whether k is currently held.
func (s Snapshot) IsHeld(k Key) bool {
	_, found := slices.BinarySearch(s.HeldKeys, k)
	return found
}

// Pressed reports whether k went down this frame.
func (s Snapshot) Pressed(k Key) bool {
	return s.KeyPressed && s.LastKey == k
}

// Over reports whether the pointer lies inside r.
func (s Snapshot) Over(r graphics.Rect) bool {
	return r.Contains(s.MouseX, s.MouseY)
}

// ClickedIn reports whether the primary button went down inside r this frame.
func (s Snapshot) ClickedIn(r graphics.Rect) bool {
	return s.MouseClicked && s.Over(r)
}
