package viz

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ratiolab/internal/config"
	"github.com/san-kum/ratiolab/internal/export"
	"github.com/san-kum/ratiolab/internal/feedback"
	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/panel"
	"github.com/san-kum/ratiolab/internal/render"
	"go.uber.org/zap"
)

// cellPixels is the nominal pixel width of a terminal cell, used to tell the
// projector how much room the golden panel has.
const cellPixels = 8

const (
	minCols = 24
	minRows = 8
)

type TickMsg time.Time

// Options configure an App.
type Options struct {
	Theme     string
	FPS       int
	Viewport  config.ViewportConfig
	ExportDir string
	Notifier  panel.Notifier
	Logger    *zap.Logger
	// Clipboard receives the copied SVG. Defaults to the system clipboard.
	Clipboard func(string) error
}

// App is the two-panel terminal front end.
type App struct {
	panels  []panel.Panel
	springs []*rectSpring
	focus   int

	proj      render.Projector
	theme     Theme
	styles    styles
	overlay   overlay
	showHelp  bool
	status    string
	width     int
	height    int
	fps       int
	exportDir string

	notify    panel.Notifier
	log       *zap.Logger
	clipboard func(string) error
}

// NewApp builds the √2 panel on the left and the golden panel on the right.
func NewApp(opts Options) (App, error) {
	if opts.Notifier == nil {
		opts.Notifier = feedback.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.Viewport == (config.ViewportConfig{}) {
		opts.Viewport = config.DefaultConfig().Viewport
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	reg := panel.NewRegistry()
	m := App{
		proj:      render.NewProjector(opts.Viewport),
		theme:     GetTheme(opts.Theme),
		width:     100,
		height:    32,
		fps:       opts.FPS,
		exportDir: opts.ExportDir,
		notify:    opts.Notifier,
		log:       opts.Logger,
		clipboard: opts.Clipboard,
	}
	m.styles = newStyles(m.theme)
	for _, name := range []string{"root2", "golden"} {
		p, err := reg.Get(name, opts.Notifier)
		if err != nil {
			return App{}, err
		}
		m.panels = append(m.panels, p)
		m.springs = append(m.springs, newRectSpring(opts.FPS))
	}
	for i := range m.panels {
		m.springs[i].jump(m.target(i))
	}
	return m, nil
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	m, err := NewApp(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m App) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the animation.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		for i := range m.panels {
			m.springs[i].step(m.target(i))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.overlay, m.showHelp = overlayNone, false
	case "?":
		m.showHelp = !m.showHelp
	case "tab", "right", "l":
		m.focus = (m.focus + 1) % len(m.panels)
	case "shift+tab", "left", "h":
		m.focus = (m.focus + len(m.panels) - 1) % len(m.panels)
	case " ", "enter":
		m.advance(m.focus)
	case "1":
		m.advance(0)
	case "2":
		m.advance(1)
	case "r":
		m.panels[m.focus].Controller().Reset()
		m.status = fmt.Sprintf("%s reset", m.panels[m.focus].Info().Title)
	case "c":
		m.open(overlayComparison)
	case "d":
		m.open(overlayDerivation)
	case "a":
		m.open(overlayArchitecture)
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		m.status = "theme: " + m.theme.Name
	case "e":
		m.export()
	case "y":
		m.copyActive()
	}
	return m, nil
}

func (m *App) advance(i int) {
	p := m.panels[i]
	if !p.Controller().Advance() {
		m.status = fmt.Sprintf("%s is fully subdivided (step %d)", p.Info().Title, p.Controller().Max())
		return
	}
	m.status = ""
}

func (m *App) open(o overlay) {
	m.overlay = o
	m.showHelp = false
	m.notify.Notify(feedback.Click)
}

// panelCells is the braille canvas size available to one panel.
func (m App) panelCells() (cols, rows int) {
	cols = (m.width-4)/len(m.panels) - 4
	rows = m.height - 14
	return max(cols, minCols), max(rows, minRows)
}

func (m App) scene(i int) render.Scene {
	cols, _ := m.panelCells()
	return m.proj.Project(m.panels[i].Frame(), float64(cols*cellPixels))
}

func (m App) target(i int) geom.Rect {
	if a, ok := m.scene(i).Active(); ok {
		return a.Rect
	}
	return geom.Rect{}
}

// exportScenes projects both panels at their configured widths.
func (m App) exportScenes() ([]render.Scene, []int) {
	scenes := make([]render.Scene, len(m.panels))
	steps := make([]int, len(m.panels))
	for i, p := range m.panels {
		scenes[i] = m.proj.Project(p.Frame(), 0)
		steps[i] = p.Controller().Step()
	}
	return scenes, steps
}

func (m *App) export() {
	scenes, steps := m.exportScenes()
	path := filepath.Join(m.exportDir, export.FileName("svg", scenes, steps))
	if err := export.WriteFile(path, "svg", scenes); err != nil {
		m.log.Warn("export failed", zap.String("path", path), zap.Error(err))
		m.status = "export failed: " + err.Error()
		return
	}
	m.log.Info("exported", zap.String("path", path))
	m.status = "saved " + path
}

func (m *App) copyActive() {
	p := m.panels[m.focus]
	svg := export.ActiveSVG(m.proj.Project(p.Frame(), 0))
	if err := m.clipboard(svg); err != nil {
		m.log.Warn("clipboard copy failed", zap.String("panel", p.Name()), zap.Error(err))
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %s active shape", p.Info().Title)
}

func (m App) View() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render("GEOMETRY OF BEAUTY") + "  " +
		m.styles.subtle.Render("two ratios, two ways of growing") + "\n")
	b.WriteString(m.styles.Separator(m.width-2) + "\n")

	switch {
	case m.showHelp:
		b.WriteString(m.helpView())
	case m.overlay != overlayNone:
		b.WriteString(m.overlayView())
	default:
		views := make([]string, len(m.panels))
		for i := range m.panels {
			views[i] = m.panelView(i)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.warning.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.keyHint.Render("space advance  tab focus  r reset  c/d/a overlays  e export  y copy  t theme  ? help  q quit"))
	return b.String()
}

func (m App) panelView(i int) string {
	p := m.panels[i]
	f := p.Frame()
	cols, rows := m.panelCells()
	color := m.theme.color(p.Name())

	ras := rasterize(m.scene(i), m.springs[i].rect(), cols, rows)
	canvas := composite([]layer{
		{ras.faded, lipgloss.NewStyle().Foreground(m.theme.Muted)},
		{ras.spiral, lipgloss.NewStyle().Foreground(m.theme.Spiral)},
		{ras.active, lipgloss.NewStyle().Foreground(color).Bold(true)},
	})

	button := m.styles.button.Foreground(color).Render(f.Caption)
	if f.Step >= f.Max {
		button = m.styles.disabled.Render(f.Caption)
	}

	lines := []string{
		m.styles.subtle.Render(strings.ToUpper(f.Info.Tag)),
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(f.Info.Title) + "  " +
			m.styles.subtle.Italic(true).Render(f.Info.Motto),
		canvas,
		lipgloss.NewStyle().Foreground(color).Render(f.Info.Label) + "  " +
			m.styles.subtle.Render(fmt.Sprintf("step %d / %d", f.Step, f.Max)),
		button,
	}
	if f.ShowFootnote() {
		lines = append(lines, m.styles.subtle.Width(cols).Render(f.Info.Footnote))
	}

	box := m.styles.panel
	if i == m.focus {
		box = m.styles.focused
	}
	return box.Width(cols + 2).Render(strings.Join(lines, "\n"))
}

func (m App) helpView() string {
	rows := [][2]string{
		{"space, enter", "advance the focused panel"},
		{"1 / 2", "advance 1:√2 / 1:φ"},
		{"tab, ←, →", "switch focus"},
		{"r", "reset the focused panel"},
		{"c", "comparison"},
		{"d", "derivation"},
		{"a", "architecture"},
		{"t", "cycle theme"},
		{"e", "export both panels as SVG"},
		{"y", "copy the active shape as SVG"},
		{"esc", "close"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(m.styles.header.Render("KEYS") + "\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-14s %s\n", r[0], m.styles.subtle.Render(r[1]))
	}
	return m.styles.overlay.Render(strings.TrimSuffix(b.String(), "\n"))
}
