package panel

import (
	"fmt"

	"github.com/san-kum/ratiolab/internal/geom"
)

var rootTwoInfo = Info{
	Title:    "1 : √2",
	Tag:      "Song-dynasty timber",
	Motto:    "the engineer's exact verse",
	Label:    "1:1.414",
	Footnote: "Endless self-similarity: A4 to A5 to A6... the ratio never changes",
	Primary:  "#346f74",
	Accent:   "#d5eff0",
	Fill:     "#ffffff",
	Edge:     "#346f74",
}

// RootTwo halves an A-series sheet one step at a time.
type RootTwo struct {
	ctrl *Controller
}

func NewRootTwo(n Notifier) *RootTwo {
	return &RootTwo{ctrl: NewController(RootTwoMax, n)}
}

func (p *RootTwo) Name() string { return "root2" }

func (p *RootTwo) Info() Info { return rootTwoInfo }

func (p *RootTwo) Controller() *Controller { return p.ctrl }

func (p *RootTwo) Frame() Frame {
	k := p.ctrl.Step()
	steps := geom.Subdivide(geom.RootTwoBase, k)
	grid := make([]GridRect, len(steps))
	for i, s := range steps {
		grid[i] = GridRect{Level: s.Level, Rect: s.Rect}
	}
	return Frame{
		Panel:   p.Name(),
		Info:    rootTwoInfo,
		Step:    k,
		Max:     p.ctrl.Max(),
		Bounds:  steps[0].Rect,
		Grid:    grid,
		Active:  steps[len(steps)-1].Rect,
		Caption: fmt.Sprintf("Halve (A%d → A%d)", k, k+1),
	}
}
