package testbed

import (
	"time"

	"github.com/go-fern/fern/pkg/animation"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/widgets"
)

// GrowBox animates its width from one value to another.
type GrowBox struct {
	*widgets.Box
	Tween *animation.Tween[float64]
}

// NewGrowBox returns a box that grows from `from` to `to` pixels wide over
// d once added to group.
func NewGrowBox(from, to float64, height int, d time.Duration, group *animation.Group) *GrowBox {
	g := &GrowBox{Box: widgets.NewBox(0, 0, int(from), height, graphics.Red, true)}
	g.Tween = animation.TweenFloat64(from, to, d, nil).OnUpdate(func(w float64) {
		g.SetSize(int(w), height)
	})
	group.Add(g.Tween)
	return g
}
