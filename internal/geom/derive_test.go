package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ratiolab/internal/geom"
)

var _ = Describe("Derivations", func() {
	It("recovers √2 from the unit square diagonal", func() {
		d := geom.DeriveRootTwo()
		Expect(d.Value).To(BeNumerically("~", geom.Sqrt2, 1e-12))
		Expect(near(d.Arc.From(), geom.Point{X: 1, Y: 0})).To(BeTrue())
	})

	It("recovers φ from the midpoint construction", func() {
		d := geom.DeriveGolden()
		Expect(d.Value).To(BeNumerically("~", geom.Phi, 1e-12))
		Expect(d.Arc.Radius).To(BeNumerically("~", math.Sqrt(1.25), 1e-12))
		Expect(near(d.Arc.To(), geom.Point{X: geom.Phi, Y: 1})).To(BeTrue())
	})
})

var _ = Describe("Compare", func() {
	It("shows the golden rectangle is longer at equal height", func() {
		c := geom.Compare(300)
		Expect(c.RootTwoWidth).To(BeNumerically("~", 424.264, 1e-3))
		Expect(c.GoldenWidth).To(BeNumerically("~", 485.410, 1e-3))
		Expect(c.Difference()).To(BeNumerically(">", 0))
	})
})
