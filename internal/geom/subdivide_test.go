package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ratiolab/internal/geom"
)

var _ = Describe("Subdivide", func() {
	It("returns only the base sheet for n=0", func() {
		steps := geom.Subdivide(geom.RootTwoBase, 0)
		Expect(steps).To(HaveLen(1))
		Expect(steps[0].Level).To(Equal(0))
		Expect(steps[0].Rect.W).To(Equal(400.0))
		Expect(steps[0].Rect.H).To(BeNumerically("~", 565.685, 1e-3))
	})

	It("halves the height first (A4 to A5)", func() {
		steps := geom.Subdivide(geom.RootTwoBase, 1)
		Expect(steps).To(HaveLen(2))
		Expect(steps[0].Rect.W).To(Equal(400.0))
		Expect(steps[0].Rect.H).To(BeNumerically("~", 400*math.Sqrt2, 1e-9))
		Expect(steps[1].Rect.X).To(BeZero())
		Expect(steps[1].Rect.Y).To(BeZero())
		Expect(steps[1].Rect.W).To(Equal(400.0))
		Expect(steps[1].Rect.H).To(BeNumerically("~", 282.843, 1e-3))
	})

	It("returns n+1 steps with increasing levels", func() {
		for n := 0; n <= 7; n++ {
			steps := geom.Subdivide(geom.RootTwoBase, n)
			Expect(steps).To(HaveLen(n + 1))
			for i, s := range steps {
				Expect(s.Level).To(Equal(i))
			}
		}
	})

	It("keeps the sheet anchored at the origin", func() {
		for _, s := range geom.Subdivide(geom.RootTwoBase, 7) {
			Expect(s.Rect.Origin()).To(Equal(geom.Point{}))
		}
	})

	It("never grows the area and preserves the √2 ratio", func() {
		steps := geom.Subdivide(geom.RootTwoBase, 7)
		for i, s := range steps {
			Expect(s.Rect.Ratio()).To(BeNumerically("~", math.Sqrt2, 1e-12))
			if i > 0 {
				Expect(s.Rect.Area()).To(BeNumerically("<=", steps[i-1].Rect.Area()))
				Expect(s.Rect.Area()).To(BeNumerically("~", steps[i-1].Rect.Area()/2, 1e-9))
			}
		}
	})

	It("is idempotent", func() {
		Expect(geom.Subdivide(geom.RootTwoBase, 7)).To(Equal(geom.Subdivide(geom.RootTwoBase, 7)))
	})

	It("tolerates deep requests without degenerate sides", func() {
		steps := geom.Subdivide(geom.RootTwoBase, 30)
		Expect(steps).To(HaveLen(31))
		last := steps[30].Rect
		Expect(last.W).To(BeNumerically(">", 0))
		Expect(last.H).To(BeNumerically(">", 0))
		Expect(last.Ratio()).To(BeNumerically("~", math.Sqrt2, 1e-9))
	})

	It("stops halving before underflow", func() {
		steps := geom.Subdivide(geom.RootTwoBase, 2500)
		last := steps[len(steps)-1].Rect
		Expect(last.W).To(BeNumerically(">", 0))
		Expect(last.H).To(BeNumerically(">", 0))
	})

	It("returns nil for negative n", func() {
		Expect(geom.Subdivide(geom.RootTwoBase, -1)).To(BeNil())
	})
})
