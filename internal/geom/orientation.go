package geom

import "fmt"

// Orientation names the side of the working rectangle a square is cut from.
type Orientation int

const (
	Left Orientation = iota
	Top
	Right
	Bottom
)

// OrientationAt returns the cut side for step i. The cycle has period 4.
func OrientationAt(i int) Orientation {
	return Orientation(((i % 4) + 4) % 4)
}

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}
