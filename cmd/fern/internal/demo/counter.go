package demo

import (
	"fmt"
	"time"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/logging"
	"github.com/go-fern/fern/pkg/rendering"
	"github.com/go-fern/fern/pkg/widgets"
)

func init() {
	register(Scene{
		Name:  "counter",
		Short: "a button that counts its clicks",
		Build: buildCounter,
	})
}

func buildCounter(e *engine.Engine) []input.Snapshot {
	title := widgets.NewText(50, 50, "BUTTON DEMO", 3, graphics.White)
	label := widgets.NewText(50, 400, "COUNT: 0", 2, graphics.White)

	cfg := widgets.DefaultButtonConfig("CLICK ME")
	cfg.X, cfg.Y = 300, 250
	button := widgets.NewButton(cfg)
	button.AnimateTransitions(e.Animations(), 120*time.Millisecond)

	clicks := 0
	button.OnClick.Connect(func(struct{}) {
		clicks++
		label.SetText(fmt.Sprintf("COUNT: %d", clicks))
		logging.Logger().Info("clicked", "count", clicks)
	})

	m := e.Manager()
	m.AddWidget(title)
	m.AddWidget(label)
	m.AddWidget(button)
	e.SetDrawCallback(func(c *rendering.Canvas) {
		c.Clear(graphics.DarkGray)
	})

	b := button.Bounds()
	x, y := b.X+b.Width/2, b.Y+b.Height/2
	idle := input.Snapshot{MouseX: 10, MouseY: 10}
	hover := input.Snapshot{MouseX: x, MouseY: y}
	press := input.Snapshot{MouseX: x, MouseY: y, MouseDown: true, MouseClicked: true}
	return []input.Snapshot{idle, hover, hover, press, hover, hover, press, hover, press, hover, idle}
}
