// Package demo holds the sample scenes rendered by "fern render".
package demo

import (
	"slices"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/input"
)

// Scene builds a widget tree on an engine.
type Scene struct {
	Name  string
	Short string
	// Build adds the scene's widgets to e and returns the input to replay,
	// one snapshot per frame.
	Build func(e *engine.Engine) []input.Snapshot
}

var scenes = make(map[string]Scene)

func register(s Scene) {
	scenes[s.Name] = s
}

// Lookup returns the scene registered under name.
func Lookup(name string) (Scene, bool) {
	s, ok := scenes[name]
	return s, ok
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
