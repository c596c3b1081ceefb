// Package config reads the optional fern.yaml project file and resolves it
// against defaults and the enclosing Go module.
package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/logging"
)

// FileName is the project file looked up by LoadOptional and Resolve.
const FileName = "fern.yaml"

// Defaults applied by Resolve.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFPS    = 60
	maxFPS        = 240
)

// Config mirrors fern.yaml.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Frame  FrameConfig  `yaml:"frame"`
	Log    LogConfig    `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// WindowConfig sizes the canvas.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// FrameConfig controls the frame loop.
type FrameConfig struct {
	FPS int `yaml:"fps,omitempty"`
	// Background is "#RRGGBB", "#AARRGGBB" or "0xAARRGGBB".
	Background string `yaml:"background,omitempty"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains configuration with every default filled in.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	AppID      string
	Title      string
	Width      int
	Height     int
	FPS        int
	Background graphics.Color
	LogLevel   slog.Level
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return parse(path, data)
}

// LoadOptional reads fern.yaml from dir if present. A missing file yields
// an empty Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.FernError{
			Op:   "config.Load",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err),
		}
	}
	return &cfg, nil
}

// Resolve loads fern.yaml from dir (if present) and fills in defaults.
// The app name falls back to the last element of the go.mod module path,
// or to the directory name outside a module.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve fills in defaults for c relative to the project directory dir.
func (c *Config) Resolve(dir string) (*Resolved, error) {
	modPath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modPath,
		AppName:    strings.TrimSpace(c.App.Name),
		AppID:      strings.TrimSpace(c.App.ID),
		Title:      strings.TrimSpace(c.Window.Title),
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		FPS:        c.Frame.FPS,
		Background: graphics.Black,
	}
	if r.AppName == "" {
		r.AppName = defaultAppName(modPath, dir)
	}
	if r.AppID == "" {
		r.AppID = defaultAppID(modPath, r.AppName)
	}
	if r.Title == "" {
		r.Title = r.AppName
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.FPS == 0 {
		r.FPS = DefaultFPS
	}

	if r.Width < 0 || r.Height < 0 {
		return nil, invalid("window size must be positive (got %dx%d)", r.Width, r.Height)
	}
	if r.FPS < 0 || r.FPS > maxFPS {
		return nil, invalid("frame.fps must be between 1 and %d (got %d)", maxFPS, r.FPS)
	}
	if bg := strings.TrimSpace(c.Frame.Background); bg != "" {
		col, err := graphics.ParseColor(bg)
		if err != nil {
			return nil, &errors.FernError{Op: "config.Resolve", Kind: errors.KindConfig, Err: fmt.Errorf("frame.background: %w", err)}
		}
		r.Background = col
	}
	level, ok := logging.ParseLevel(strings.ToLower(strings.TrimSpace(c.Log.Level)))
	if !ok {
		return nil, invalid("log.level must be debug, info, warn or error (got %q)", c.Log.Level)
	}
	r.LogLevel = level

	if err := validateAppID(r.AppID); err != nil {
		return nil, err
	}
	return r, nil
}

func invalid(format string, args ...any) error {
	return &errors.FernError{Op: "config.Resolve", Kind: errors.KindConfig, Err: fmt.Errorf(format, args...)}
}

// FindProjectRoot walks up from start to the nearest directory holding a
// go.mod file.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found above %s)", start)
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// there is no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", invalid("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "fern_app"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return "com.example." + sanitizeSegment(appName, true)
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}
	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, s := range segments {
		segments[i] = sanitizeSegment(s, i > 0)
	}
	return strings.Join(segments, ".")
}

// sanitizeSegment lowercases s and keeps only [a-z0-9].
func sanitizeSegment(s string, allowLeadingDigit bool) string {
	var out []rune
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		out = []rune("app")
	}
	if !allowLeadingDigit && out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return invalid("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return invalid("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return invalid("app.id segments cannot start with a digit (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return invalid("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
