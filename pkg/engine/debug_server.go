package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/logging"
)

// debugServer is the HTTP inspector for a running engine.
type debugServer struct {
	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// publishedFrame is the state the debug handlers read. The frame loop
// replaces it after every frame while the server runs.
type publishedFrame struct {
	snapshot FrameSnapshot
	stats    Stats
	pixels   []graphics.Color
	width    int
	height   int
}

// hitTimeout bounds how long /hit waits for the frame loop.
const hitTimeout = 2 * time.Second

// StartDebugServer serves the widget tree, frame timing, and the last
// frame image on localhost:port. Port 0 picks a free port. It returns the
// bound port; calling it again while running returns the current port.
func (e *Engine) StartDebugServer(port int) (int, error) {
	e.debug.mu.Lock()
	defer e.debug.mu.Unlock()

	if e.debug.server != nil {
		return e.debug.listener.Addr().(*net.TCPAddr).Port, nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}
	actual := listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/widget-tree", e.handleWidgetTree)
	mux.HandleFunc("/frames", e.handleFrames)
	mux.HandleFunc("/frame.png", e.handleFramePNG)
	mux.HandleFunc("/hit", e.handleHit)

	server := &http.Server{Handler: mux}
	e.debug.server = server
	e.debug.listener = listener
	e.debugActive.Store(true)

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			e.debug.mu.Lock()
			e.debug.server = nil
			e.debug.listener = nil
			e.debug.mu.Unlock()
			e.debugActive.Store(false)
			logging.Logger().Error("debug server failed", "err", err)
		}
	}()

	logging.Logger().Info("debug server listening", "port", actual)
	return actual, nil
}

// StopDebugServer shuts the debug server down. It is a no-op when the
// server is not running.
func (e *Engine) StopDebugServer() {
	e.debug.mu.Lock()
	server := e.debug.server
	e.debug.server = nil
	e.debug.listener = nil
	e.debug.mu.Unlock()
	e.debugActive.Store(false)

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

func (e *Engine) publish(viewport graphics.Size) {
	buf := e.canvas.Buffer()
	frame := publishedFrame{
		snapshot: FrameSnapshot{
			FrameID:  e.frameID,
			Viewport: viewport,
			Roots:    CaptureTree(e.manager.Widgets()),
		},
		stats:  e.Stats(),
		pixels: append([]graphics.Color(nil), buf...),
		width:  viewport.Width,
		height: viewport.Height,
	}
	e.pubMu.Lock()
	e.published = frame
	e.pubMu.Unlock()
}

func (e *Engine) lastPublished() (publishedFrame, bool) {
	e.pubMu.RLock()
	defer e.pubMu.RUnlock()
	return e.published, e.published.snapshot.FrameID > 0
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (e *Engine) handleWidgetTree(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	frame, ok := e.lastPublished()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, frame.snapshot)
}

func (e *Engine) handleFrames(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	frame, _ := e.lastPublished()
	samples := e.timing.Samples()
	ms := make([]float64, len(samples))
	for i, d := range samples {
		ms[i] = float64(d) / float64(time.Millisecond)
	}
	writeJSON(w, struct {
		Stats     Stats     `json:"stats"`
		SamplesMs []float64 `json:"samplesMs"`
	}{frame.stats, ms})
}

func (e *Engine) handleFramePNG(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	frame, ok := e.lastPublished()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, frame.width, frame.height))
	for i, col := range frame.pixels {
		c := col.NRGBA()
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		logging.Logger().Warn("debug server png encode", "err", err)
	}
}

// handleHit runs a hit test on the frame loop and lists the widgets under
// ?x=&y=, topmost first.
func (e *Engine) handleHit(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be integers", http.StatusBadRequest)
		return
	}

	done := make(chan []string, 1)
	e.Dispatch(func() {
		var names []string
		for _, hit := range e.HitTest(x, y) {
			names = append(names, core.Describe(hit))
		}
		done <- names
	})

	select {
	case names := <-done:
		writeJSON(w, struct {
			X    int      `json:"x"`
			Y    int      `json:"y"`
			Hits []string `json:"hits"`
		}{x, y, names})
	case <-time.After(hitTimeout):
		http.Error(w, "frame loop not running", http.StatusServiceUnavailable)
	case <-r.Context().Done():
	}
}
