package geom

import "math"

type Segment struct {
	From, To Point
}

// Derivation is a compass-and-straightedge construction of a ratio on the
// unit square. Value is read off the construction, not copied from a constant.
type Derivation struct {
	Name     string
	Square   Rect
	Segments []Segment
	Arc      Arc
	Value    float64
}

// DeriveRootTwo swings the diagonal of the unit square down onto the
// extended base line.
func DeriveRootTwo() Derivation {
	pivot := Point{0, 1}
	corner := Point{1, 0}
	r := math.Hypot(corner.X-pivot.X, corner.Y-pivot.Y)
	arc := Arc{
		Center: pivot,
		Radius: r,
		Start:  math.Atan2(corner.Y-pivot.Y, corner.X-pivot.X),
		End:    0,
	}
	return Derivation{
		Name:     "root2",
		Square:   Rect{W: 1, H: 1},
		Segments: []Segment{{pivot, corner}},
		Arc:      arc,
		Value:    arc.To().X - pivot.X,
	}
}

// DeriveGolden takes the midpoint of the unit square's base and swings the
// line to the opposite top corner down onto the extended base.
func DeriveGolden() Derivation {
	mid := Point{0.5, 1}
	corner := Point{1, 0}
	r := math.Hypot(corner.X-mid.X, corner.Y-mid.Y)
	arc := Arc{
		Center: mid,
		Radius: r,
		Start:  math.Atan2(corner.Y-mid.Y, corner.X-mid.X),
		End:    0,
	}
	return Derivation{
		Name:     "golden",
		Square:   Rect{W: 1, H: 1},
		Segments: []Segment{{mid, corner}},
		Arc:      arc,
		Value:    arc.To().X,
	}
}

// Comparison lays a √2 rectangle and a golden rectangle side by side at a
// common height.
type Comparison struct {
	Height       float64
	RootTwoWidth float64
	GoldenWidth  float64
}

func Compare(h float64) Comparison {
	return Comparison{Height: h, RootTwoWidth: h * Sqrt2, GoldenWidth: h * Phi}
}

// Difference is how much longer the golden rectangle is.
func (c Comparison) Difference() float64 {
	return c.GoldenWidth - c.RootTwoWidth
}
