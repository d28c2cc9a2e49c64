package geom

import (
	"fmt"
	"math"
)

// Ratio constants. Both are exact double-precision constants from the
// math package and are never recomputed per frame.
const (
	Sqrt2 = math.Sqrt2
	Phi   = math.Phi
)

// Base dimensions in model units.
const (
	// RootTwoBase is the short side W₀ of the √2 sheet; the long side is W₀·√2.
	RootTwoBase = 400.0
	// GoldenBase is the height of the golden rectangle; its width is GoldenBase·φ.
	GoldenBase = 350.0
)

// minDim is the smallest side the √2 kernel will halve. Below it the sheet
// is kept as is rather than underflowing towards zero.
const minDim = 1e-300

type Point struct {
	X, Y float64
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Origin() Point { return Point{r.X, r.Y} }

func (r Rect) Area() float64 { return r.W * r.H }

func (r Rect) Long() float64 { return math.Max(r.W, r.H) }

func (r Rect) Short() float64 { return math.Min(r.W, r.H) }

// Ratio returns long side over short side. A degenerate rectangle yields +Inf.
func (r Rect) Ratio() float64 {
	if r.Short() == 0 {
		return math.Inf(1)
	}
	return r.Long() / r.Short()
}

func (r Rect) Scale(s float64) Rect {
	return Rect{r.X * s, r.Y * s, r.W * s, r.H * s}
}

// Ratios maps each rectangle to its long/short ratio.
func Ratios(rects []Rect) []float64 {
	out := make([]float64, len(rects))
	for i, r := range rects {
		out[i] = r.Ratio()
	}
	return out
}
