package panel_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/panel"
)

var _ = Describe("RootTwo", func() {
	It("shows the whole sheet at step 0", func() {
		p := panel.NewRootTwo(nil)
		f := p.Frame()
		Expect(f.Step).To(Equal(0))
		Expect(f.Grid).To(HaveLen(1))
		Expect(f.Active).To(Equal(f.Bounds))
		Expect(f.Caption).To(Equal("Halve (A0 → A1)"))
		Expect(f.ShowFootnote()).To(BeFalse())
	})

	It("keeps one grid sheet per level", func() {
		p := panel.NewRootTwo(nil)
		for i := 0; i < 3; i++ {
			p.Controller().Advance()
		}
		f := p.Frame()
		Expect(f.Grid).To(HaveLen(4))
		Expect(f.Active).To(Equal(f.Grid[3].Rect))
		Expect(f.Active.Ratio()).To(BeNumerically("~", geom.Sqrt2, 1e-12))
		Expect(f.ShowFootnote()).To(BeTrue())
	})

	It("stops at seven halvings", func() {
		p := panel.NewRootTwo(nil)
		for i := 0; i < 20; i++ {
			p.Controller().Advance()
		}
		Expect(p.Frame().Grid).To(HaveLen(8))
	})
})

var _ = Describe("Golden", func() {
	It("shows the unsubdivided rectangle at step 0", func() {
		f := panel.NewGolden(nil).Frame()
		Expect(f.Squares).To(BeEmpty())
		Expect(f.Active).To(Equal(geom.GoldenRect(geom.GoldenBase)))
		Expect(f.Caption).To(Equal("Remove square"))
	})

	It("shows k squares at step k", func() {
		p := panel.NewGolden(nil)
		for k := 1; k <= panel.GoldenMax; k++ {
			p.Controller().Advance()
			f := p.Frame()
			Expect(f.Squares).To(HaveLen(k))
			Expect(f.Active).To(Equal(f.Squares[k-1].Remainder))
		}
		Expect(p.Frame().Caption).To(Equal("Remove square (8)"))
	})

	It("removes the left square first", func() {
		p := panel.NewGolden(nil)
		p.Controller().Advance()
		s := p.Frame().Squares[0]
		Expect(s.Orientation).To(Equal(geom.Left))
		Expect(s.Size()).To(Equal(geom.GoldenBase))
	})

	It("recomputes the same frame for the same step", func() {
		p := panel.NewGolden(nil)
		p.Controller().Advance()
		p.Controller().Advance()
		Expect(p.Frame()).To(Equal(p.Frame()))
	})
})

var _ = Describe("Registry", func() {
	It("builds both panels", func() {
		r := panel.NewRegistry()
		Expect(r.Names()).To(Equal([]string{"golden", "root2"}))
		for _, name := range r.Names() {
			p, err := r.Get(name, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name()).To(Equal(name))
		}
	})

	It("rejects unknown names", func() {
		_, err := panel.NewRegistry().Get("silver", nil)
		Expect(errors.Is(err, panel.ErrUnknownPanel)).To(BeTrue())
	})

	It("keeps the two panels independent", func() {
		r := panel.NewRegistry()
		a, _ := r.Get("root2", nil)
		b, _ := r.Get("golden", nil)
		a.Controller().Advance()
		Expect(b.Controller().Step()).To(Equal(0))
	})
})
