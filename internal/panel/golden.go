package panel

import (
	"fmt"

	"github.com/san-kum/ratiolab/internal/geom"
)

var goldenInfo = Info{
	Title:    "1 : φ",
	Tag:      "Golden spiral",
	Motto:    "the artist's romantic dream",
	Label:    "1:1.618",
	Footnote: "Nature's code: the spiral grows by squares, in shells, galaxies and temples",
	Primary:  "#8e6b29",
	Accent:   "#ebdab0",
	Fill:     "#f5edd6",
	Edge:     "#c59d45",
}

// Golden removes squares from a golden rectangle. Step k shows k squares
// removed; step 0 is the untouched rectangle.
type Golden struct {
	ctrl *Controller
}

func NewGolden(n Notifier) *Golden {
	return &Golden{ctrl: NewController(GoldenMax, n)}
}

func (p *Golden) Name() string { return "golden" }

func (p *Golden) Info() Info { return goldenInfo }

func (p *Golden) Controller() *Controller { return p.ctrl }

func (p *Golden) Frame() Frame {
	k := p.ctrl.Step()
	base := geom.GoldenRect(geom.GoldenBase)
	steps := geom.Whirl(geom.GoldenBase, k-1)
	active := base
	if len(steps) > 0 {
		active = steps[len(steps)-1].Remainder
	}
	caption := "Remove square"
	if k > 0 {
		caption = fmt.Sprintf("Remove square (%d)", k)
	}
	return Frame{
		Panel:   p.Name(),
		Info:    goldenInfo,
		Step:    k,
		Max:     p.ctrl.Max(),
		Bounds:  base,
		Squares: steps,
		Active:  active,
		Caption: caption,
	}
}
