package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/widgets"
)

type fakeT struct {
	fatals []string
	errs   []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errs = append(f.errs, fmt.Sprintf(format, args...))
}

func snapshotTester(t *testing.T, col graphics.Color) *WidgetTester {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 40, Height: 30})
	tester.PumpWidget(widgets.NewColumn(
		widgets.NewBox(0, 0, 10, 10, col, true),
		widgets.NewSizedBox(5, 5),
	))
	return tester
}

func TestCaptureSnapshot(t *testing.T) {
	snap := snapshotTester(t, graphics.Red).CaptureSnapshot()
	if snap.Viewport != (graphics.Size{Width: 40, Height: 30}) {
		t.Errorf("viewport = %v", snap.Viewport)
	}
	if len(snap.Roots) != 1 || snap.Roots[0].Type != "Column" || len(snap.Roots[0].Children) != 2 {
		t.Fatalf("roots = %+v", snap.Roots)
	}
	if len(snap.Pixels) != 64 {
		t.Errorf("pixel digest %q should be hex sha256", snap.Pixels)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	a := snapshotTester(t, graphics.Red).CaptureSnapshot()
	b := snapshotTester(t, graphics.Red).CaptureSnapshot()
	if diff := a.Diff(b); diff != "" {
		t.Errorf("identical trees should not differ:\n%s", diff)
	}
	c := snapshotTester(t, graphics.Green).CaptureSnapshot()
	if a.Diff(c) == "" {
		t.Error("a color change should change the pixel digest")
	}
}

func TestSnapshot_MatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tree.snapshot.json")
	snap := snapshotTester(t, graphics.Red).CaptureSnapshot()

	missing := &fakeT{}
	snap.MatchesFile(missing, path)
	if len(missing.fatals) != 1 || !strings.Contains(missing.fatals[0], UpdateSnapshotsEnv) {
		t.Errorf("missing file should explain how to create it: %v", missing.fatals)
	}

	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	ok := &fakeT{}
	snap.MatchesFile(ok, path)
	if len(ok.fatals)+len(ok.errs) != 0 {
		t.Errorf("round trip should match: %v %v", ok.fatals, ok.errs)
	}

	changed := snapshotTester(t, graphics.Blue).CaptureSnapshot()
	bad := &fakeT{}
	changed.MatchesFile(bad, path)
	if len(bad.errs) != 1 {
		t.Errorf("changed snapshot should report one mismatch, got %v", bad.errs)
	}
}

func TestSnapshot_UpdateEnv(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "golden.json")
	snap := snapshotTester(t, graphics.Red).CaptureSnapshot()

	rec := &fakeT{}
	snap.MatchesFile(rec, path)
	if len(rec.fatals) != 0 {
		t.Fatalf("update failed: %v", rec.fatals)
	}
	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := snap.Diff(loaded); diff != "" {
		t.Errorf("written snapshot differs:\n%s", diff)
	}
}
