package panel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ratiolab/internal/feedback"
	"github.com/san-kum/ratiolab/internal/panel"
)

var _ = Describe("Controller", func() {
	var (
		rec  *recorder
		ctrl *panel.Controller
	)

	BeforeEach(func() {
		rec = &recorder{}
		ctrl = panel.NewController(panel.RootTwoMax, rec)
	})

	It("starts at step 0", func() {
		Expect(ctrl.Step()).To(Equal(0))
		Expect(ctrl.Max()).To(Equal(7))
		Expect(ctrl.CanAdvance()).To(BeTrue())
	})

	It("advances one step and plays a swoosh", func() {
		Expect(ctrl.Advance()).To(BeTrue())
		Expect(ctrl.Step()).To(Equal(1))
		Expect(rec.cues).To(Equal([]feedback.Cue{feedback.Swoosh}))
	})

	It("never passes the maximum", func() {
		for i := 0; i < ctrl.Max()+5; i++ {
			ctrl.Advance()
		}
		Expect(ctrl.Step()).To(Equal(ctrl.Max()))
		Expect(ctrl.CanAdvance()).To(BeFalse())
	})

	It("stays silent when advancing at the bound", func() {
		for i := 0; i < 7; i++ {
			Expect(ctrl.Advance()).To(BeTrue())
		}
		Expect(rec.cues).To(HaveLen(7))

		Expect(ctrl.Advance()).To(BeFalse())
		Expect(ctrl.Step()).To(Equal(7))
		Expect(rec.cues).To(HaveLen(7))
	})

	It("resets from every reachable step", func() {
		for k := 0; k <= ctrl.Max(); k++ {
			for ctrl.Step() < k {
				ctrl.Advance()
			}
			rec.cues = nil
			ctrl.Reset()
			Expect(ctrl.Step()).To(Equal(0))
			Expect(rec.cues).To(Equal([]feedback.Cue{feedback.Pop}))
		}
	})

	It("can advance again after a reset", func() {
		for i := 0; i < 10; i++ {
			ctrl.Advance()
		}
		ctrl.Reset()
		Expect(ctrl.Advance()).To(BeTrue())
		Expect(ctrl.Step()).To(Equal(1))
	})

	It("accepts a nil notifier", func() {
		c := panel.NewController(panel.GoldenMax, nil)
		Expect(c.Advance()).To(BeTrue())
		c.Reset()
		Expect(c.Step()).To(Equal(0))
	})
})
