package render

import (
	"math"

	"github.com/san-kum/ratiolab/internal/config"
	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/panel"
)

// Projector sizes panels for a viewport.
type Projector struct {
	vp config.ViewportConfig
}

func NewProjector(vp config.ViewportConfig) Projector {
	return Projector{vp: vp}
}

// Width returns the pixel width of a panel. The √2 panel has a fixed width;
// the golden panel takes the lesser of its maximum and the available width
// minus the margin. available <= 0 means unknown and yields the maximum.
func (p Projector) Width(name string, available float64) float64 {
	if name != "golden" {
		return p.vp.RootTwoWidth
	}
	if available <= 0 {
		return p.vp.GoldenMaxWidth
	}
	return math.Max(1, math.Min(p.vp.GoldenMaxWidth, available-p.vp.GoldenMargin))
}

// Fit is the uniform scale mapping a model width onto a pixel width.
func Fit(modelWidth, pixelWidth float64) float64 {
	if modelWidth <= 0 {
		return 0
	}
	return pixelWidth / modelWidth
}

// Project maps a frame to pixel space.
func (p Projector) Project(f panel.Frame, available float64) Scene {
	return ProjectAt(f, p.Width(f.Panel, available))
}

// ProjectAt maps a frame to an explicit pixel width.
func ProjectAt(f panel.Frame, width float64) Scene {
	s := Fit(f.Bounds.W, width)
	sc := Scene{
		Panel:  f.Panel,
		Title:  f.Info.Title,
		Label:  f.Info.Label,
		Width:  width,
		Height: f.Bounds.H * s,
		Scale:  s,
	}

	sc.Prims = append(sc.Prims, Primitive{
		Kind:  KindSheet,
		Rect:  f.Bounds.Scale(s),
		Style: Style{Fill: "#ffffff", FillOpacity: 1, Opacity: 1},
	})

	for _, g := range f.Grid {
		sc.Prims = append(sc.Prims, Primitive{
			Kind:  KindGrid,
			Level: g.Level,
			Rect:  g.Rect.Scale(s),
			Style: Style{
				Stroke:      f.Info.Primary,
				StrokeWidth: math.Max(1, 4-float64(g.Level)*0.5) * s,
				Opacity:     0.2,
			},
		})
	}

	for _, q := range f.Squares {
		sc.Prims = append(sc.Prims,
			Primitive{
				Kind:  KindSquare,
				Level: q.Index,
				Rect:  q.Square.Scale(s),
				Style: Style{Stroke: f.Info.Edge, StrokeWidth: 1 * s, Fill: f.Info.Fill, FillOpacity: 1, Opacity: 1},
			},
			Primitive{
				Kind:  KindArc,
				Level: q.Index,
				Arc:   q.Arc.Scale(s),
				Style: Style{Stroke: f.Info.Primary, StrokeWidth: 3 * s, Opacity: 1},
			},
		)
	}

	active := Style{Stroke: f.Info.Primary, Fill: f.Info.Accent, Opacity: 1}
	if f.Panel == "golden" {
		active.StrokeWidth, active.FillOpacity = 3*s, 0.3
	} else {
		active.StrokeWidth, active.FillOpacity = 4*s, 0.6
	}
	sc.Prims = append(sc.Prims, Primitive{
		Kind:  KindActive,
		Level: f.Step,
		Rect:  f.Active.Scale(s),
		Style: active,
	})
	return sc
}

// Lerp blends two rectangles, t in [0,1].
func Lerp(a, b geom.Rect, t float64) geom.Rect {
	return geom.Rect{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		W: a.W + (b.W-a.W)*t,
		H: a.H + (b.H-a.H)*t,
	}
}
