package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/widgets"
)

// waitForServer polls the health endpoint until ready or timeout.
func waitForServer(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/health", port)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

// waitForServerDown polls until the server stops responding or timeout.
func waitForServerDown(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/health", port)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err != nil {
			return nil
		}
		resp.Body.Close()
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("server still running after %v", timeout)
}

func startServer(t *testing.T, e *Engine) int {
	t.Helper()
	port, err := e.StartDebugServer(0)
	if err != nil {
		t.Fatalf("failed to start debug server: %v", err)
	}
	t.Cleanup(e.StopDebugServer)
	if err := waitForServer(port, 2*time.Second); err != nil {
		t.Fatalf("server not ready: %v", err)
	}
	return port
}

func TestDebugServer_StartStop(t *testing.T) {
	e := New(&fakeHost{}, Config{Width: 4, Height: 4})
	port := startServer(t, e)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/health", port))
	if err != nil {
		t.Fatalf("failed to reach health endpoint: %v", err)
	}
	defer resp.Body.Close()
	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}

	again, err := e.StartDebugServer(0)
	if err != nil || again != port {
		t.Errorf("second start = %d, %v; want %d", again, err, port)
	}

	e.StopDebugServer()
	if err := waitForServerDown(port, 2*time.Second); err != nil {
		t.Errorf("server did not stop: %v", err)
	}
	e.StopDebugServer()
}

func TestDebugServer_TreeBeforeFirstFrame(t *testing.T) {
	e := New(&fakeHost{}, Config{Width: 4, Height: 4})
	port := startServer(t, e)

	for _, path := range []string{"/widget-tree", "/frame.png"} {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%d%s", port, path))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s: status %d, want 503", path, resp.StatusCode)
		}
	}
}

func TestDebugServer_PublishedFrame(t *testing.T) {
	e := New(&fakeHost{}, Config{Width: 6, Height: 4, Background: graphics.White})
	e.Manager().AddWidget(widgets.NewRow(widgets.NewBox(0, 0, 2, 2, graphics.Red, true)))
	port := startServer(t, e)
	e.Frame()

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/widget-tree", port))
	if err != nil {
		t.Fatal(err)
	}
	var snap FrameSnapshot
	err = json.NewDecoder(resp.Body).Decode(&snap)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("decode tree: %v", err)
	}
	if snap.FrameID != 1 || len(snap.Roots) != 1 || snap.Roots[0].Type != "Row" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if len(snap.Roots[0].Children) != 1 || snap.Roots[0].Children[0].Type != "*widgets.Box" {
		t.Errorf("children = %+v", snap.Roots[0].Children)
	}

	resp, err = http.Get(fmt.Sprintf("http://localhost:%d/frame.png", port))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if got := graphics.FromColor(img.At(0, 0)); got != graphics.Red {
		t.Errorf("pixel(0,0) = %v, want red", got)
	}
	if got := graphics.FromColor(img.At(5, 3)); got != graphics.White {
		t.Errorf("pixel(5,3) = %v, want white", got)
	}
}

func TestDebugServer_Hit(t *testing.T) {
	e := New(NewHeadlessHost("", 0), Config{Width: 50, Height: 50, FPS: 200})
	e.Manager().AddWidget(widgets.NewBox(0, 0, 10, 10, graphics.Red, true))
	port := startServer(t, e)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/hit?x=5&y=5", port))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var body struct {
		Hits []string `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Hits) != 1 || body.Hits[0] != "*widgets.Box" {
		t.Errorf("hits = %v", body.Hits)
	}

	bad, err := http.Get(fmt.Sprintf("http://localhost:%d/hit?x=a", port))
	if err != nil {
		t.Fatal(err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("bad query status = %d, want 400", bad.StatusCode)
	}
}

func TestDebugServer_MethodNotAllowed(t *testing.T) {
	e := New(&fakeHost{}, Config{Width: 4, Height: 4})
	port := startServer(t, e)

	resp, err := http.Post(fmt.Sprintf("http://localhost:%d/health", port), "application/json", nil)
	if err != nil {
		t.Fatalf("failed to reach health endpoint: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405 for POST, got %d", resp.StatusCode)
	}
}

func TestDebugServer_FailFastOnPortConflict(t *testing.T) {
	blocker, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("failed to create blocker listener: %v", err)
	}
	defer blocker.Close()

	e := New(&fakeHost{}, Config{Width: 4, Height: 4})
	if _, err := e.StartDebugServer(blocker.Addr().(*net.TCPAddr).Port); err == nil {
		e.StopDebugServer()
		t.Error("expected error when binding to occupied port, got nil")
	}
}
