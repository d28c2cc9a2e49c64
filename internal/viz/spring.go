package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/ratiolab/internal/geom"
)

// Spring constants for the active rectangle. A stiffness of 200 and a
// damping of 25 on a unit mass.
var (
	springFrequency = math.Sqrt(200)
	springDamping   = 25 / (2 * math.Sqrt(200))
)

const settleEpsilon = 0.05

// rectSpring animates a rectangle toward a target, one spring per edge
// component.
type rectSpring struct {
	spring harmonica.Spring
	pos    [4]float64
	vel    [4]float64
	primed bool
}

func newRectSpring(fps int) *rectSpring {
	if fps <= 0 {
		fps = 60
	}
	return &rectSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

func (s *rectSpring) jump(r geom.Rect) {
	s.pos = [4]float64{r.X, r.Y, r.W, r.H}
	s.vel = [4]float64{}
	s.primed = true
}

// step moves one frame toward target and reports whether the spring is
// still in motion.
func (s *rectSpring) step(target geom.Rect) bool {
	if !s.primed {
		s.jump(target)
		return false
	}
	goal := [4]float64{target.X, target.Y, target.W, target.H}
	moving := false
	for i := range s.pos {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], goal[i])
		if math.Abs(s.pos[i]-goal[i]) > settleEpsilon || math.Abs(s.vel[i]) > settleEpsilon {
			moving = true
		}
	}
	if !moving {
		s.pos, s.vel = goal, [4]float64{}
	}
	return moving
}

func (s *rectSpring) rect() geom.Rect {
	return geom.Rect{X: s.pos[0], Y: s.pos[1], W: s.pos[2], H: s.pos[3]}
}
