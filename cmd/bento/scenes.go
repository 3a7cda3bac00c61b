package main

import (
	"fmt"

	"github.com/grindlemire/bento"
)

// newScene returns the app for a built-in scene name.
func newScene(name string) (bento.App, error) {
	switch name {
	case "hello":
		return &helloScene{}, nil
	case "layout":
		return &layoutScene{}, nil
	case "buttons":
		return &buttonsScene{}, nil
	case "overflow":
		return &overflowScene{}, nil
	default:
		return nil, fmt.Errorf("unknown scene %q, see 'bento scenes'", name)
	}
}

func sceneNames() []string {
	return []string{"buttons", "hello", "layout", "overflow"}
}

// helloScene centers a greeting on a dark background.
type helloScene struct{}

func (s *helloScene) Update(ui *bento.UI) *bento.Element {
	return bento.NewColumn([]*bento.Element{
		bento.NewText("Hello from bento", bento.Hex("#cdd6f4")),
	},
		bento.WithSize(bento.Fill(), bento.Fill()),
		bento.WithAlignX(bento.AlignCenter),
		bento.WithAlignY(bento.AlignCenter),
		bento.WithBackground(bento.Hex("#1e1e2e")),
	)
}

// layoutScene splits the surface into three percent panes over a text
// strip, exercising Percent and Fill sizing.
type layoutScene struct{}

func (s *layoutScene) Update(ui *bento.UI) *bento.Element {
	pane := func(c bento.Color, w float32) *bento.Element {
		return bento.NewRect(0, 0, c,
			bento.WithWidth(bento.Percent(w)),
			bento.WithHeight(bento.Fill()),
		)
	}

	return bento.NewColumn([]*bento.Element{
		bento.NewRow([]*bento.Element{
			pane(bento.Red, 25),
			pane(bento.Green, 50),
			pane(bento.Blue, 25),
		},
			bento.WithSize(bento.Fill(), bento.Fill()),
		),
		bento.NewRow([]*bento.Element{
			bento.NewText("Hello", bento.White),
			bento.NewText("World", bento.Red),
		},
			bento.WithGap(8),
			bento.WithPadding(bento.EdgeAll(4)),
		),
	},
		bento.WithSize(bento.Fill(), bento.Fill()),
	)
}

// buttonsScene is a counter. Headless runs show the initial state; a
// host with a pointer drives the callbacks.
type buttonsScene struct {
	count int
}

func (s *buttonsScene) Update(ui *bento.UI) *bento.Element {
	return bento.NewColumn([]*bento.Element{
		bento.NewText(fmt.Sprintf("count: %d", s.count), bento.White),
		bento.NewRow([]*bento.Element{
			bento.NewButton("-", func() { s.count-- }, bento.WithKey("dec")),
			bento.NewButton("+", func() { s.count++ }, bento.WithKey("inc")),
			bento.NewButton("quit", ui.Exit, bento.WithKey("quit"),
				bento.WithBackground(bento.Hex("#b44")),
			),
		},
			bento.WithGap(12),
		),
	},
		bento.WithSize(bento.Fill(), bento.Fill()),
		bento.WithAlignX(bento.AlignCenter),
		bento.WithAlignY(bento.AlignCenter),
		bento.WithGap(16),
		bento.WithBackground(bento.Hex("#1e1e2e")),
	)
}

// overflowScene clips a tall column inside a fixed, rounded, shadowed
// box.
type overflowScene struct{}

func (s *overflowScene) Update(ui *bento.UI) *bento.Element {
	var lines []*bento.Element
	for i := 0; i < 24; i++ {
		shade := 0.25 + float32(i%4)*0.15
		lines = append(lines, bento.NewRect(0, 28, bento.RGB(shade, shade, 0.6),
			bento.WithWidth(bento.Fill()),
			bento.WithShrink(0),
		))
	}

	box := bento.NewColumn(lines,
		bento.WithSize(bento.Fixed(260), bento.Fixed(180)),
		bento.WithGap(4),
		bento.WithPadding(bento.EdgeAll(8)),
		bento.WithBackground(bento.Hex("#313244")),
		bento.WithCornerRadius(10),
		bento.WithShadow(bento.RGBA(0, 0, 0, 0.6), 12, 4, 4),
		bento.WithOverflow(bento.OverflowHidden),
	)

	return bento.NewColumn([]*bento.Element{box},
		bento.WithSize(bento.Fill(), bento.Fill()),
		bento.WithAlignX(bento.AlignCenter),
		bento.WithAlignY(bento.AlignCenter),
		bento.WithBackground(bento.Hex("#1e1e2e")),
	)
}
