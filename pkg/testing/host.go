package testing

import (
	"errors"
	"sync"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
)

// FakeHost is an in-memory engine.Host. Queued snapshots are returned one
// per frame; when the queue is empty the pointer stays put and no edges
// fire. Every presented frame is copied so tests can inspect pixels.
type FakeHost struct {
	mu         sync.Mutex
	queue      []input.Snapshot
	idle       input.Snapshot
	frames     int
	pixels     []graphics.Color
	width      int
	height     int
	presentErr error
	closeAfter int
}

// NewFakeHost returns an empty host.
func NewFakeHost() *FakeHost {
	return &FakeHost{}
}

// Queue appends snapshots to be returned by later PollInput calls.
func (h *FakeHost) Queue(snaps ...input.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, snaps...)
}

// Pending returns the number of queued snapshots.
func (h *FakeHost) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

// PollInput implements engine.Host.
func (h *FakeHost) PollInput() input.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queue) == 0 {
		return h.idle
	}
	s := h.queue[0]
	h.queue = h.queue[1:]
	h.idle = input.Snapshot{MouseX: s.MouseX, MouseY: s.MouseY, MouseDown: s.MouseDown, HeldKeys: s.HeldKeys}
	return s
}

// PresentFrame implements engine.Host.
func (h *FakeHost) PresentFrame(buf []graphics.Color, width, height int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames++
	h.pixels = append(h.pixels[:0], buf...)
	h.width = width
	h.height = height
	return h.presentErr
}

// ShouldClose implements engine.Closer.
func (h *FakeHost) ShouldClose() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closeAfter > 0 && h.frames >= h.closeAfter
}

// CloseAfter makes ShouldClose report true once n frames were presented.
func (h *FakeHost) CloseAfter(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closeAfter = n
}

// FailPresent makes PresentFrame return err. Pass nil to succeed again.
func (h *FakeHost) FailPresent(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.presentErr = err
}

// ErrNoFrame is returned by Pixel before the first frame.
var ErrNoFrame = errors.New("no frame presented")

// Frames returns the number of frames presented.
func (h *FakeHost) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Pixel returns a pixel of the last presented frame. Out-of-range reads
// return graphics.Transparent.
func (h *FakeHost) Pixel(x, y int) (graphics.Color, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.frames == 0 {
		return graphics.Transparent, ErrNoFrame
	}
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return graphics.Transparent, nil
	}
	return h.pixels[y*h.width+x], nil
}

// FrameSize returns the dimensions of the last presented frame.
func (h *FakeHost) FrameSize() graphics.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return graphics.Size{Width: h.width, Height: h.height}
}

// PollIdle returns the snapshot PollInput yields once the queue drains,
// without consuming anything.
func (h *FakeHost) PollIdle() input.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.idle
}
