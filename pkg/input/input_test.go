package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-fern/fern/pkg/graphics"
)

func TestTrackerClickEdge(t *testing.T) {
	tr := NewTracker()
	tr.MouseMove(10, 20)
	tr.MouseButton(true)

	s := tr.Snapshot()
	if !s.MouseClicked || !s.MouseDown {
		t.Fatalf("first frame = %+v, want clicked and down", s)
	}
	if s.Mouse() != graphics.Pt(10, 20) {
		t.Errorf("Mouse() = %v", s.Mouse())
	}

	tr.MouseButton(true)
	s = tr.Snapshot()
	if s.MouseClicked || !s.MouseDown {
		t.Errorf("held button should not click again: %+v", s)
	}

	tr.MouseButton(false)
	tr.MouseButton(true)
	if s = tr.Snapshot(); !s.MouseClicked {
		t.Error("release then press should click")
	}
}

func TestTrackerKeys(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown(KeyShift)
	tr.KeyDown('A')
	tr.Text("A")

	s := tr.Snapshot()
	if !s.Pressed('A') || s.Pressed(KeyShift) {
		t.Errorf("Pressed: last key should be A, got %v", s.LastKey)
	}
	if diff := cmp.Diff([]Key{'A', KeyShift}, s.HeldKeys); diff != "" {
		t.Errorf("HeldKeys (-want +got):\n%s", diff)
	}
	if s.TextInput != "A" {
		t.Errorf("TextInput = %q", s.TextInput)
	}

	tr.KeyUp('A')
	s = tr.Snapshot()
	if s.KeyPressed || s.TextInput != "" {
		t.Errorf("per-frame fields should reset: %+v", s)
	}
	if s.IsHeld('A') || !s.IsHeld(KeyShift) {
		t.Errorf("held keys after release = %v", s.HeldKeys)
	}
}

func TestSnapshotHelpers(t *testing.T) {
	r := graphics.RectXYWH(0, 0, 10, 10)
	s := Snapshot{MouseX: 5, MouseY: 5, MouseClicked: true}
	if !s.Over(r) || !s.ClickedIn(r) {
		t.Error("pointer inside rect should be over and clicked")
	}
	s.MouseX = 10
	if s.Over(r) {
		t.Error("right edge is exclusive")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyEnter:  "enter",
		KeyLeft:   "left",
		'Q':       "Q",
		KeyNone:   "none",
		Key(5000): "Key(5000)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
