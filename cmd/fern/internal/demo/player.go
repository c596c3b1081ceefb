package demo

import (
	"time"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/widgets"
)

func init() {
	register(Scene{
		Name:  "player",
		Short: "a music player screen built from nested layouts",
		Build: buildPlayer,
	})
}

func controlButton(col graphics.Color, label string, scale int) *widgets.Container {
	return widgets.NewContainer(graphics.Transparent, 0, 0, 80, 50,
		widgets.CenterOf(widgets.NewText(0, 0, label, scale, col)))
}

func text(s string, scale int, col graphics.Color) *widgets.Text {
	return widgets.NewText(0, 0, s, scale, col)
}

func buildPlayer(e *engine.Engine) []input.Snapshot {
	cfg := e.Config()

	progress := widgets.NewProgressBar(0, 0, 0, 4, graphics.DarkGray, graphics.SkyBlue)
	progress.SetValue(0.35)
	progress.AnimateTo(0.4, e.Animations(), 2*time.Second)

	album := widgets.CenterOf(
		widgets.NewContainer(graphics.DarkBlue, 0, 0, 180, 180,
			widgets.CenterOf(text("MUSIC", 4, graphics.SkyBlue))),
	)

	songInfo := widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStretch, layout.MainAxisSizeMin,
		widgets.CenterOf(text("COSMIC WAVES", 2, graphics.White)),
		widgets.VSpace(8),
		widgets.CenterOf(text("STELLAR ORCHESTRA", 1, graphics.LightGray)),
	)

	track := widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStretch, layout.MainAxisSizeMin,
		progress,
		widgets.VSpace(8),
		widgets.RowOf(layout.MainAxisAlignmentSpaceBetween, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMax,
			text("2:14", 1, graphics.Gray),
			text("5:30", 1, graphics.Gray),
		),
	)

	controls := widgets.CenterOf(
		widgets.RowOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentCenter, layout.MainAxisSizeMin,
			controlButton(graphics.LightGray, "PREV", 1),
			widgets.HSpace(25),
			controlButton(graphics.White, "II", 2),
			widgets.HSpace(25),
			controlButton(graphics.LightGray, "NEXT", 1),
		),
	)

	extras := widgets.RowOf(layout.MainAxisAlignmentSpaceBetween, layout.CrossAxisAlignmentCenter, layout.MainAxisSizeMax,
		controlButton(graphics.LightGray, "UP", 1),
		widgets.NewContainer(graphics.DarkGray, 0, 0, 100, 4,
			widgets.NewContainer(graphics.White, 0, 0, 65, 4, nil)),
		controlButton(graphics.LightGray, "REFRESH", 1),
		controlButton(graphics.LightGray, "LIKE", 1),
	)

	nowPlaying := widgets.NewContainer(graphics.Charcoal, 0, 0, 0, 60,
		widgets.PaddingOf(layout.EdgeInsetsAll(10),
			widgets.RowOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentCenter, layout.MainAxisSizeMax,
				widgets.NewContainer(graphics.DarkBlue, 0, 0, 40, 40, nil),
				widgets.HSpace(15),
				widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMin,
					text("NEXT: LUNAR ECLIPSE", 1, graphics.White),
					widgets.VSpace(4),
					text("STELLAR ORCHESTRA", 1, graphics.Gray),
				),
				widgets.NewSpacer(1),
				controlButton(graphics.White, "NEXT", 1),
			),
		),
	)

	root := widgets.NewContainer(graphics.Black, 0, 0, cfg.Width, cfg.Height,
		widgets.PaddingOf(layout.EdgeInsetsAll(20),
			widgets.ColumnOf(layout.MainAxisAlignmentStart, layout.CrossAxisAlignmentStart, layout.MainAxisSizeMax,
				widgets.VSpace(30),
				album,
				widgets.VSpace(25),
				songInfo,
				widgets.VSpace(25),
				track,
				widgets.VSpace(25),
				controls,
				widgets.VSpace(25),
				extras,
				widgets.NewSpacer(1),
				nowPlaying,
			),
		),
	)
	e.Manager().AddWidget(root)
	e.SetBackground(graphics.Black)
	return nil
}
