package testing

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/rendering"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "FERN_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree and a digest of the rendered pixels.
type Snapshot struct {
	Viewport graphics.Size       `json:"viewport"`
	Roots    []engine.WidgetNode `json:"roots"`
	// Pixels is the SHA-256 of the canvas buffer, so any visible change
	// shows up without storing the image.
	Pixels string `json:"pixels,omitempty"`
}

// CaptureSnapshot captures the current tree and canvas.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	frame := t.engine.Snapshot()
	return &Snapshot{
		Viewport: frame.Viewport,
		Roots:    frame.Roots,
		Pixels:   PixelDigest(t.engine.Canvas()),
	}
}

// PixelDigest hashes the canvas dimensions and buffer.
func PixelDigest(c *rendering.Canvas) string {
	h := sha256.New()
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(c.Width()))
	h.Write(word[:])
	binary.BigEndian.PutUint32(word[:], uint32(c.Height()))
	h.Write(word[:])
	for _, col := range c.Buffer() {
		binary.BigEndian.PutUint32(word[:], uint32(col))
		h.Write(word[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff. When FERN_UPDATE_SNAPSHOTS=1 is set, the file is
// rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got):\n%s\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a readable diff from want to s, or "" when equal.
func (s *Snapshot) Diff(want *Snapshot) string {
	return cmp.Diff(want, s)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
