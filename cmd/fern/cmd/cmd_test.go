package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &buf, &buf
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return &buf
}

func TestExecute_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}} {
		buf := capture(t)
		if err := Execute(args); err != nil {
			t.Fatalf("Execute(%q): %v", args, err)
		}
		for _, name := range []string{"render", "config", "version"} {
			if !strings.Contains(buf.String(), name) {
				t.Errorf("Execute(%q) help is missing %q", args, name)
			}
		}
	}
}

func TestExecute_CommandHelp(t *testing.T) {
	buf := capture(t)
	if err := Execute([]string{"render", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "counter, player") {
		t.Errorf("render help should list scenes:\n%s", buf.String())
	}
}

func TestExecute_Version(t *testing.T) {
	buf := capture(t)
	if err := Execute([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), Version) {
		t.Errorf("version output = %q", buf.String())
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	capture(t)
	if err := Execute([]string{"deploy"}); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestRender(t *testing.T) {
	buf := capture(t)
	dir := t.TempDir()
	cfgDir := t.TempDir()
	yaml := "window: {width: 320, height: 240}\nframe: {fps: 30}\nlog: {level: error}\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "fern.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Execute([]string{"render", "--scene", "player", "--frames", "2", "--out", dir, "--config", cfgDir})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"frame_0000.png", "frame_0001.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(buf.String(), "Rendered 2 frames") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRender_BadArgs(t *testing.T) {
	capture(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"--scene", "nope"}},
		{"zero frames", []string{"--frames", "0"}},
		{"unknown flag", []string{"--fast"}},
		{"stray argument", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runRender(append(tt.args, "--config", t.TempDir(), "--out", t.TempDir())); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	buf := capture(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/tools/viewer\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Execute([]string{"config", dir}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"app_name: viewer", "app_id: com.example.tools.viewer", "width: 800", "#FF000000", "log_level: INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}
