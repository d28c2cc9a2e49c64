package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ratiolab/internal/geom"
)

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

var _ = Describe("Whirl", func() {
	It("cuts the left square at step 0", func() {
		steps := geom.Whirl(geom.GoldenBase, 0)
		Expect(steps).To(HaveLen(1))
		s := steps[0]
		Expect(s.Orientation).To(Equal(geom.Left))
		Expect(s.Size()).To(Equal(350.0))
		Expect(s.Square.Origin()).To(Equal(geom.Point{}))
		Expect(s.Remainder.X).To(Equal(350.0))
		Expect(s.Remainder.Y).To(BeZero())
		Expect(s.Remainder.W).To(BeNumerically("~", 216.312, 1e-3))
		Expect(s.Remainder.H).To(Equal(350.0))
	})

	It("starts from a golden base rectangle", func() {
		base := geom.GoldenRect(geom.GoldenBase)
		Expect(base.W).To(BeNumerically("~", 566.312, 1e-3))
		Expect(base.Ratio()).To(BeNumerically("~", geom.Phi, 1e-12))
	})

	It("yields nothing before the first cut", func() {
		Expect(geom.Whirl(geom.GoldenBase, -1)).To(BeEmpty())
	})

	It("keeps every remainder golden", func() {
		for _, s := range geom.Whirl(geom.GoldenBase, 8) {
			Expect(s.Remainder.Ratio()).To(BeNumerically("~", geom.Phi, geom.Phi*1e-9))
		}
	})

	It("chains each remainder into the next cut", func() {
		steps := geom.Whirl(geom.GoldenBase, 8)
		for i := 1; i < len(steps); i++ {
			prev := steps[i-1].Remainder
			Expect(steps[i].Size()).To(BeNumerically("~", prev.Short(), 1e-9))
		}
	})

	It("cycles orientation with period 4", func() {
		steps := geom.Whirl(geom.GoldenBase, 12)
		want := []geom.Orientation{geom.Left, geom.Top, geom.Right, geom.Bottom}
		for i, s := range steps {
			Expect(s.Index).To(Equal(i))
			Expect(s.Orientation).To(Equal(want[i%4]))
			Expect(geom.OrientationAt(i)).To(Equal(geom.OrientationAt(i + 4)))
		}
	})

	It("draws quarter arcs across each removed square", func() {
		for _, s := range geom.Whirl(geom.GoldenBase, 8) {
			Expect(s.Arc.Radius).To(BeNumerically("~", s.Size(), 1e-9))
			Expect(s.Arc.End - s.Arc.Start).To(BeNumerically("~", math.Pi/2, 1e-12))
			Expect(s.Arc.Sweep()).To(BeTrue())

			sq := s.Square
			var from, to geom.Point
			switch s.Orientation {
			case geom.Left:
				from, to = geom.Point{X: sq.X, Y: sq.Y + sq.H}, geom.Point{X: sq.X + sq.W, Y: sq.Y}
			case geom.Top:
				from, to = geom.Point{X: sq.X, Y: sq.Y}, geom.Point{X: sq.X + sq.W, Y: sq.Y + sq.H}
			case geom.Right:
				from, to = geom.Point{X: sq.X + sq.W, Y: sq.Y}, geom.Point{X: sq.X, Y: sq.Y + sq.H}
			case geom.Bottom:
				from, to = geom.Point{X: sq.X + sq.W, Y: sq.Y + sq.H}, geom.Point{X: sq.X, Y: sq.Y}
			}
			Expect(near(s.Arc.From(), from)).To(BeTrue(), "step %d from", s.Index)
			Expect(near(s.Arc.To(), to)).To(BeTrue(), "step %d to", s.Index)
		}
	})

	It("writes the first arc as an SVG command", func() {
		s := geom.Whirl(geom.GoldenBase, 0)[0]
		Expect(s.Arc.Path()).To(Equal("M 0.000,350.000 A 350.000,350.000 0 0 1 350.000,0.000"))
	})

	It("is idempotent", func() {
		Expect(geom.Whirl(geom.GoldenBase, 8)).To(Equal(geom.Whirl(geom.GoldenBase, 8)))
	})
})

var _ = Describe("Orientation", func() {
	It("names each variant", func() {
		Expect(geom.Left.String()).To(Equal("left"))
		Expect(geom.Top.String()).To(Equal("top"))
		Expect(geom.Right.String()).To(Equal("right"))
		Expect(geom.Bottom.String()).To(Equal("bottom"))
	})
})
