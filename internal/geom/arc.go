package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Arc is a circular arc in model space. Start and End are angles in
// radians; End > Start draws with the positive sweep (SVG sweep-flag 1).
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	End    float64
}

// quarterArc builds the 90° positive-sweep arc running from one point to
// another. The centre sits off the chord midpoint by half the chord, turned
// a quarter towards the sweep side.
func quarterArc(from, to Point) Arc {
	dx, dy := to.X-from.X, to.Y-from.Y
	c := Point{
		X: (from.X+to.X)/2 - dy/2,
		Y: (from.Y+to.Y)/2 + dx/2,
	}
	start := math.Atan2(from.Y-c.Y, from.X-c.X)
	return Arc{
		Center: c,
		Radius: math.Hypot(dx, dy) / math.Sqrt2,
		Start:  start,
		End:    start + math.Pi/2,
	}
}

func (a Arc) pointAt(theta float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
	}
}

func (a Arc) From() Point { return a.pointAt(a.Start) }

func (a Arc) To() Point { return a.pointAt(a.End) }

// Sweep reports whether the arc turns in the positive (clockwise on screen) direction.
func (a Arc) Sweep() bool { return a.End >= a.Start }

func (a Arc) Scale(s float64) Arc {
	return Arc{Center: a.Center.Scale(s), Radius: a.Radius * s, Start: a.Start, End: a.End}
}

// Path renders the arc as an SVG path command.
func (a Arc) Path() string {
	large, sweep := 0, 0
	if math.Abs(a.End-a.Start) > math.Pi {
		large = 1
	}
	if a.Sweep() {
		sweep = 1
	}
	from, to := a.From(), a.To()
	return fmt.Sprintf("M %s,%s A %s,%s 0 %d %d %s,%s",
		num(from.X), num(from.Y), num(a.Radius), num(a.Radius), large, sweep, num(to.X), num(to.Y))
}

// num formats a coordinate to three decimals, folding rounding noise
// around zero so it never prints as -0.000.
func num(v float64) string {
	if math.Abs(v) < 5e-4 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Points flattens the arc into n segments (n+1 points).
func (a Arc) Points(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts[i] = a.pointAt(a.Start + t*(a.End-a.Start))
	}
	return pts
}
