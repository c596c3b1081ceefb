package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/logging"
)

// HeadlessHost replays scripted input and optionally writes every
// presented frame to disk as a PNG.
type HeadlessHost struct {
	// OutDir receives frame_NNNN.png files. Empty disables writing.
	OutDir string
	// MaxFrames makes ShouldClose report true after that many frames.
	// Zero means no limit.
	MaxFrames int

	mu      sync.Mutex
	script  []input.Snapshot
	idle    input.Snapshot
	frames  int
	last    *image.NRGBA
	written []string
}

// NewHeadlessHost returns a host that writes frames to outDir and closes
// after maxFrames.
func NewHeadlessHost(outDir string, maxFrames int) *HeadlessHost {
	return &HeadlessHost{OutDir: outDir, MaxFrames: maxFrames}
}

// Script queues snapshots to be returned by successive PollInput calls.
func (h *HeadlessHost) Script(snaps ...input.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.script = append(h.script, snaps...)
}

// PollInput returns the next scripted snapshot. Once the script runs out
// the pointer stays where the last snapshot left it, with no new clicks,
// key presses or text.
func (h *HeadlessHost) PollInput() input.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.script) == 0 {
		return h.idle
	}
	s := h.script[0]
	h.script = h.script[1:]
	h.idle = input.Snapshot{
		MouseX:    s.MouseX,
		MouseY:    s.MouseY,
		MouseDown: s.MouseDown,
		LastKey:   s.LastKey,
		HeldKeys:  s.HeldKeys,
	}
	return s
}

// PresentFrame copies the frame and writes it when OutDir is set.
func (h *HeadlessHost) PresentFrame(buf []graphics.Color, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, col := range buf[:width*height] {
		j := i * 4
		img.Pix[j+0] = col.R()
		img.Pix[j+1] = col.G()
		img.Pix[j+2] = col.B()
		img.Pix[j+3] = col.A()
	}

	h.mu.Lock()
	h.frames++
	n := h.frames
	h.last = img
	h.mu.Unlock()

	if h.OutDir == "" {
		return nil
	}
	path := filepath.Join(h.OutDir, fmt.Sprintf("frame_%04d.png", n))
	if err := writePNG(path, img); err != nil {
		return err
	}
	h.mu.Lock()
	h.written = append(h.written, path)
	h.mu.Unlock()
	logging.Logger().Debug("frame written", "path", path)
	return nil
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create frame dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame: %w", err)
	}
	return f.Close()
}

// ShouldClose reports whether MaxFrames frames have been presented.
func (h *HeadlessHost) ShouldClose() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.MaxFrames > 0 && h.frames >= h.MaxFrames
}

// Frames returns the number of frames presented.
func (h *HeadlessHost) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Last returns the most recent frame, or nil before the first one.
func (h *HeadlessHost) Last() *image.NRGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Written returns the paths of the files written so far.
func (h *HeadlessHost) Written() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.written...)
}
