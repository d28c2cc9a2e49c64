package feedback

import (
	"errors"
	"fmt"
)

type Cue int

const (
	Click Cue = iota
	Swoosh
	Pop
)

var (
	ErrUnknownCue  = errors.New("feedback: unknown cue")
	ErrUnavailable = errors.New("feedback: audio output unavailable")
)

func (c Cue) String() string {
	switch c {
	case Click:
		return "click"
	case Swoosh:
		return "swoosh"
	case Pop:
		return "pop"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

func ParseCue(s string) (Cue, error) {
	for _, c := range []Cue{Click, Swoosh, Pop} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCue, s)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Notify(Cue) {}
