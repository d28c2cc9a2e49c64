package panel_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ratiolab/internal/feedback"
)

func TestPanel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Panel Suite")
}

type recorder struct {
	cues []feedback.Cue
}

func (r *recorder) Notify(c feedback.Cue) { r.cues = append(r.cues, c) }
