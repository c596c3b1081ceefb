package testing

import (
	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/rendering"
)

// Probe is a leaf widget that records how the framework calls it.
type Probe struct {
	core.Base

	// Name is returned by DebugName.
	Name string
	// Fill, when not transparent, is painted over the bounds on Render.
	Fill graphics.Color
	// Consume is returned from HandleInput.
	Consume bool
	// PanicOnRender and PanicOnInput make the handlers panic.
	PanicOnRender bool
	PanicOnInput  bool

	Renders     int
	Layouts     int
	Inputs      []input.Snapshot
	Constraints []layout.Constraints
}

// NewProbe returns a probe at (x, y) with a preferred size.
func NewProbe(name string, x, y, width, height int) *Probe {
	return &Probe{Base: core.NewBase(x, y, width, height), Name: name}
}

// DebugName implements core.Named.
func (p *Probe) DebugName() string { return p.Name }

// Render implements core.Widget.
func (p *Probe) Render(c *rendering.Canvas) {
	p.Renders++
	if p.PanicOnRender {
		panic(p.Name + ": render")
	}
	if p.Fill.A() != 0 {
		c.FillRect(p.Bounds(), p.Fill)
	}
}

// HandleInput implements core.Widget.
func (p *Probe) HandleInput(in input.Snapshot) bool {
	p.Inputs = append(p.Inputs, in)
	if p.PanicOnInput {
		panic(p.Name + ": input")
	}
	return p.Consume
}

// Layout implements core.Widget and records c.
func (p *Probe) Layout(c layout.Constraints) graphics.Size {
	p.Layouts++
	p.Constraints = append(p.Constraints, c)
	return p.Base.Layout(c)
}

// LastConstraints returns the constraints of the most recent Layout call.
func (p *Probe) LastConstraints() layout.Constraints {
	if len(p.Constraints) == 0 {
		return layout.Constraints{}
	}
	return p.Constraints[len(p.Constraints)-1]
}
