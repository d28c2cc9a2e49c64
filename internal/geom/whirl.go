package geom

import "fmt"

// SpiralStep records one square removal of the whirling-squares construction.
type SpiralStep struct {
	Index       int
	Orientation Orientation
	Square      Rect
	Arc         Arc
	// Remainder is the rectangle left after the cut; it is the operand of
	// the next step.
	Remainder Rect
}

func (s SpiralStep) Size() float64 { return s.Square.W }

// GoldenRect returns the base rectangle of the golden kernel for a height h.
func GoldenRect(h float64) Rect {
	return Rect{W: h * Phi, H: h}
}

// Whirl returns n+1 spiral steps cut from a golden rectangle of height h.
// Step 0 already removes the first (left) square. n = -1 asks for the state
// before any cut and yields an empty sequence, as does any n < 0.
func Whirl(h float64, n int) []SpiralStep {
	if n < 0 {
		return nil
	}
	steps := make([]SpiralStep, 0, n+1)
	r := GoldenRect(h)
	for i := 0; i <= n; i++ {
		s := cut(r, i)
		steps = append(steps, s)
		r = s.Remainder
	}
	return steps
}

// cut removes one square from r on the side chosen by the step index.
func cut(r Rect, i int) SpiralStep {
	x, y, w, h := r.X, r.Y, r.W, r.H
	o := OrientationAt(i)
	var (
		size     float64
		sq       Rect
		from, to Point
	)
	switch o {
	case Left:
		size = h
		sq = Rect{x, y, size, size}
		from, to = Point{x, y + size}, Point{x + size, y}
		x += size
		w -= size
	case Top:
		size = w
		sq = Rect{x, y, size, size}
		from, to = Point{x, y}, Point{x + size, y + size}
		y += size
		h -= size
	case Right:
		size = h
		sq = Rect{x + w - size, y, size, size}
		from, to = Point{x + w, y}, Point{x + w - size, y + size}
		w -= size
	case Bottom:
		size = w
		sq = Rect{x, y + h - size, size, size}
		from, to = Point{x + w, y + h}, Point{x, y + h - size}
		h -= size
	default:
		panic(fmt.Sprintf("geom: unhandled orientation %v", o))
	}
	return SpiralStep{
		Index:       i,
		Orientation: o,
		Square:      sq,
		Arc:         quarterArc(from, to),
		Remainder:   Rect{x, y, w, h},
	}
}

// SpiralRemainders extracts the remainder rectangles of a spiral sequence.
func SpiralRemainders(steps []SpiralStep) []Rect {
	rects := make([]Rect, len(steps))
	for i, s := range steps {
		rects[i] = s.Remainder
	}
	return rects
}
