package viz

import (
	"math"

	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/render"
)

const arcSegments = 24

// raster is a scene drawn onto three braille layers.
type raster struct {
	faded  *Canvas
	spiral *Canvas
	active *Canvas
}

// cellFit returns the canvas size in cells and the scale from scene pixels
// to braille dots for a scene fitted inside cols x rows cells. Braille dots
// are close enough to square that one uniform scale is used.
func cellFit(width, height float64, cols, rows int) (int, int, float64) {
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return 1, 1, 0
	}
	k := math.Min(float64(cols*2)/width, float64(rows*4)/height)
	w := int(math.Ceil(width * k / 2))
	h := int(math.Ceil(height * k / 4))
	return max(w, 1), max(h, 1), k
}

// rasterize draws sc fitted into cols x rows cells. active replaces the
// scene's highlighted rectangle so it can be animated.
func rasterize(sc render.Scene, active geom.Rect, cols, rows int) raster {
	w, h, k := cellFit(sc.Width, sc.Height, cols, rows)
	r := raster{faded: NewCanvas(w, h), spiral: NewCanvas(w, h), active: NewCanvas(w, h)}
	for _, p := range sc.Prims {
		switch p.Kind {
		case render.KindSheet, render.KindGrid, render.KindSquare:
			r.faded.DrawRect(p.Rect, k)
		case render.KindArc:
			r.spiral.DrawPolyline(p.Arc.Points(arcSegments), k)
		}
	}
	r.active.DrawRect(active, k)
	return r
}
