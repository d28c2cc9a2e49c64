package panel

import "github.com/san-kum/ratiolab/internal/feedback"

// Notifier receives fire-and-forget feedback cues. It must not block.
type Notifier interface {
	Notify(cue feedback.Cue)
}

// Controller is a step counter bounded to [0, max].
type Controller struct {
	step   int
	max    int
	notify Notifier
}

func NewController(max int, n Notifier) *Controller {
	if n == nil {
		n = feedback.Nop{}
	}
	return &Controller{max: max, notify: n}
}

func (c *Controller) Step() int { return c.step }

func (c *Controller) Max() int { return c.max }

func (c *Controller) CanAdvance() bool { return c.step < c.max }

// Advance moves one step forward and plays the swoosh cue. At the maximum
// it does nothing, emits no cue and returns false.
func (c *Controller) Advance() bool {
	if !c.CanAdvance() {
		return false
	}
	c.step++
	c.notify.Notify(feedback.Swoosh)
	return true
}

// Reset returns to step 0 and plays the pop cue. It always succeeds.
func (c *Controller) Reset() {
	c.step = 0
	c.notify.Notify(feedback.Pop)
}
