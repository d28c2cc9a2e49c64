package render

import (
	"fmt"

	"github.com/san-kum/ratiolab/internal/geom"
)

type Kind int

const (
	// KindSheet is the blank base paper behind everything else.
	KindSheet Kind = iota
	// KindGrid is an earlier, faded √2 sheet.
	KindGrid
	// KindSquare is a removed golden square.
	KindSquare
	// KindArc is one quarter of the golden spiral.
	KindArc
	// KindActive is the highlighted current rectangle.
	KindActive
)

func (k Kind) String() string {
	switch k {
	case KindSheet:
		return "sheet"
	case KindGrid:
		return "grid"
	case KindSquare:
		return "square"
	case KindArc:
		return "arc"
	case KindActive:
		return "active"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Style struct {
	Stroke      string
	StrokeWidth float64
	Fill        string
	FillOpacity float64
	Opacity     float64
}

// Primitive is a rectangle or arc in pixel space. Level is the step that
// produced it.
type Primitive struct {
	Kind  Kind
	Level int
	Rect  geom.Rect
	Arc   geom.Arc
	Style Style
}

// Scene is a panel ready to draw. Coordinates are pixels with the origin at
// the panel's top-left corner.
type Scene struct {
	Panel  string
	Title  string
	Label  string
	Width  float64
	Height float64
	Scale  float64
	Prims  []Primitive
}

// Active returns the highlighted primitive.
func (s Scene) Active() (Primitive, bool) {
	for i := len(s.Prims) - 1; i >= 0; i-- {
		if s.Prims[i].Kind == KindActive {
			return s.Prims[i], true
		}
	}
	return Primitive{}, false
}

func (s Scene) Count(k Kind) int {
	n := 0
	for _, p := range s.Prims {
		if p.Kind == k {
			n++
		}
	}
	return n
}
