package panel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/ratiolab/internal/geom"
)

const (
	RootTwoMax = 7
	GoldenMax  = 8
)

var ErrUnknownPanel = errors.New("panel: unknown panel")

// Info is the static copy shown around a panel.
type Info struct {
	Title    string
	Tag      string
	Motto    string
	Label    string
	Footnote string
	Primary  string
	Accent   string
	Fill     string
	Edge     string
}

// GridRect is one earlier sheet of the √2 subdivision.
type GridRect struct {
	Level int
	Rect  geom.Rect
}

// Frame is everything a renderer needs for one panel at one step.
type Frame struct {
	Panel   string
	Info    Info
	Step    int
	Max     int
	Bounds  geom.Rect
	Grid    []GridRect
	Squares []geom.SpiralStep
	Active  geom.Rect
	Caption string
}

// ShowFootnote reports whether the footnote is visible; it appears once the
// user has taken the first step.
func (f Frame) ShowFootnote() bool { return f.Step > 0 }

type Panel interface {
	Name() string
	Info() Info
	Controller() *Controller
	Frame() Frame
}

// Registry maps panel names to constructors.
type Registry struct {
	panels map[string]func(Notifier) Panel
}

func NewRegistry() *Registry {
	r := &Registry{panels: make(map[string]func(Notifier) Panel)}
	r.panels["root2"] = func(n Notifier) Panel { return NewRootTwo(n) }
	r.panels["golden"] = func(n Notifier) Panel { return NewGolden(n) }
	return r
}

func (r *Registry) Get(name string, n Notifier) (Panel, error) {
	fn, ok := r.panels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, name)
	}
	return fn(n), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.panels))
	for name := range r.panels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
