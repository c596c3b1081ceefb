// Package testing provides a widget testing harness for Fern.
//
// # Quick Start
//
// Create a tester, pump widgets, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := ferntest.NewWidgetTesterWithT(t)
//	    label := widgets.NewText(0, 0, "0", 1, graphics.White)
//	    button := widgets.ButtonOf("ADD", func() { label.SetText("1") })
//	    tester.PumpWidget(label, button)
//
//	    tester.Tap(ferntest.ByText("ADD"))
//
//	    if !tester.Find(ferntest.ByText("1")).Exists() {
//	        t.Error("expected label to read 1")
//	    }
//	}
//
// The tester drives a real engine.Engine against a FakeHost, so every pump
// runs the full frame: dispatch, input, animations, layout, and render.
//
// # Snapshot Testing
//
// Capture and compare widget tree snapshots:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	FERN_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Each Pump advances the fake clock by one frame:
//
//	button.AnimateTransitions(tester.Animations(), 100*time.Millisecond)
//	tester.PumpFor(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import ferntest "github.com/go-fern/fern/pkg/testing"
package testing
