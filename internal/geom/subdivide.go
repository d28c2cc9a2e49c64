package geom

// SubdivisionStep is the active sheet after Level halvings.
type SubdivisionStep struct {
	Level int
	Rect  Rect
}

// Subdivide returns n+1 steps starting from a base×base·√2 sheet. Each step
// halves the longer side of the previous one; the origin stays at (0,0), the
// kept half being the one anchored at the original corner. n < 0 yields nil.
func Subdivide(base float64, n int) []SubdivisionStep {
	if n < 0 {
		return nil
	}
	steps := make([]SubdivisionStep, 0, n+1)
	w, h := base, base*Sqrt2
	for i := 0; i <= n; i++ {
		steps = append(steps, SubdivisionStep{Level: i, Rect: Rect{W: w, H: h}})
		if h > w {
			if h/2 > minDim {
				h /= 2
			}
		} else if w/2 > minDim {
			w /= 2
		}
	}
	return steps
}

// SubdivisionRects extracts the rectangles of a subdivision sequence.
func SubdivisionRects(steps []SubdivisionStep) []Rect {
	rects := make([]Rect, len(steps))
	for i, s := range steps {
		rects[i] = s.Rect
	}
	return rects
}
