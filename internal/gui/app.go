package gui

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ratiolab/internal/config"
	"github.com/san-kum/ratiolab/internal/export"
	"github.com/san-kum/ratiolab/internal/feedback"
	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/panel"
	"github.com/san-kum/ratiolab/internal/render"
	"go.uber.org/zap"
)

const (
	screenW = 1280
	screenH = 720
	gap     = 80
	top     = 120

	// Seconds for the active rectangle to glide to its new place.
	glide = 0.35
)

// Theme Colors
var (
	ColBg      = rl.NewColor(250, 250, 249, 255) // Paper
	ColInk     = rl.NewColor(41, 37, 36, 255)    // Ink
	ColText    = rl.NewColor(87, 83, 78, 255)    // Stone
	ColTextDim = rl.NewColor(168, 162, 158, 255) // Faded stone
	ColShade   = rl.NewColor(0, 0, 0, 140)       // Overlay backdrop
)

type Options struct {
	FPS       int
	Viewport  config.ViewportConfig
	ExportDir string
	Notifier  panel.Notifier
	Logger    *zap.Logger
}

type overlay int

const (
	overlayNone overlay = iota
	overlayComparison
	overlayDerivation
	overlayArchitecture
)

// glider eases the drawn active rectangle from its last position to the
// current one.
type glider struct {
	from, to geom.Rect
	start    time.Time
}

func (g *glider) retarget(r geom.Rect, now time.Time) {
	if r == g.to {
		return
	}
	g.from = g.at(now)
	g.to = r
	g.start = now
}

func (g *glider) at(now time.Time) geom.Rect {
	t := now.Sub(g.start).Seconds() / glide
	if t >= 1 {
		return g.to
	}
	return render.Lerp(g.from, g.to, easeOut(t))
}

func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

type App struct {
	Panels  []panel.Panel
	Focus   int
	Overlay overlay
	Status  string
	Font    rl.Font

	proj      render.Projector
	gliders   []*glider
	exportDir string
	notify    panel.Notifier
	log       *zap.Logger
	quit      bool
}

// initWindow initializes the Raylib window and disables the default exit key.
func initWindow(fps int) {
	rl.InitWindow(screenW, screenH, "ratiolab")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// glyphs is printable ASCII plus the symbols used in titles and captions.
func glyphs() []rune {
	cps := make([]rune, 0, 100)
	for r := rune(32); r < 127; r++ {
		cps = append(cps, r)
	}
	return append(cps, '√', 'φ', '→')
}

// loadFont loads Liberation Mono when present and falls back to raylib's
// built-in font.
func loadFont() rl.Font {
	cps := glyphs()
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, cps, int32(len(cps)))
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(opts Options) (*App, error) {
	if opts.Notifier == nil {
		opts.Notifier = feedback.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Viewport == (config.ViewportConfig{}) {
		opts.Viewport = config.DefaultConfig().Viewport
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	app := &App{
		Font:      loadFont(),
		proj:      render.NewProjector(opts.Viewport),
		exportDir: opts.ExportDir,
		notify:    opts.Notifier,
		log:       opts.Logger,
	}
	reg := panel.NewRegistry()
	now := time.Now()
	for _, name := range []string{"root2", "golden"} {
		p, err := reg.Get(name, opts.Notifier)
		if err != nil {
			return nil, err
		}
		app.Panels = append(app.Panels, p)
	}
	for i := range app.Panels {
		a := app.active(i)
		app.gliders = append(app.gliders, &glider{from: a, to: a, start: now})
	}
	return app, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	initWindow(opts.FPS)
	defer rl.CloseWindow()

	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// available is the width left for the golden panel once the √2 panel and
// the gaps are placed.
func (a *App) available() float64 {
	return float64(screenW) - a.proj.Width("root2", 0) - 2*gap
}

func (a *App) scene(i int) render.Scene {
	return a.proj.Project(a.Panels[i].Frame(), a.available())
}

func (a *App) active(i int) geom.Rect {
	if p, ok := a.scene(i).Active(); ok {
		return p.Rect
	}
	return geom.Rect{}
}

// origin is the top-left corner of panel i on screen.
func (a *App) origin(i int) geom.Point {
	if i == 0 {
		return geom.Point{X: gap, Y: top}
	}
	return geom.Point{X: 2*gap + a.proj.Width("root2", 0), Y: top}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	if a.Overlay != overlayNone {
		if rl.IsKeyPressed(rl.KeyEscape) {
			a.Overlay = overlayNone
		}
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyTab), rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyLeft):
		a.Focus = (a.Focus + 1) % len(a.Panels)
	case rl.IsKeyPressed(rl.KeySpace), rl.IsKeyPressed(rl.KeyEnter):
		a.advance(a.Focus)
	case rl.IsKeyPressed(rl.KeyOne):
		a.advance(0)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.advance(1)
	case rl.IsKeyPressed(rl.KeyR):
		a.Panels[a.Focus].Controller().Reset()
		a.Status = ""
	case rl.IsKeyPressed(rl.KeyC):
		a.open(overlayComparison)
	case rl.IsKeyPressed(rl.KeyD):
		a.open(overlayDerivation)
	case rl.IsKeyPressed(rl.KeyA):
		a.open(overlayArchitecture)
	case rl.IsKeyPressed(rl.KeyE):
		a.export()
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.click(rl.GetMousePosition())
	}

	now := time.Now()
	for i := range a.Panels {
		a.gliders[i].retarget(a.active(i), now)
	}
}

func (a *App) advance(i int) {
	p := a.Panels[i]
	if !p.Controller().Advance() {
		a.Status = fmt.Sprintf("%s is fully subdivided", p.Info().Title)
		return
	}
	a.Status = ""
}

func (a *App) open(o overlay) {
	a.Overlay = o
	a.notify.Notify(feedback.Click)
}

// click advances the panel whose caption button was pressed.
func (a *App) click(pos rl.Vector2) {
	for i := range a.Panels {
		if rl.CheckCollisionPointRec(pos, a.buttonRect(i)) {
			a.Focus = i
			a.advance(i)
			return
		}
	}
}

func (a *App) buttonRect(i int) rl.Rectangle {
	o := a.origin(i)
	sc := a.scene(i)
	return rl.NewRectangle(float32(o.X), float32(o.Y+sc.Height+46), 260, 34)
}

func (a *App) export() {
	scenes := make([]render.Scene, len(a.Panels))
	steps := make([]int, len(a.Panels))
	for i, p := range a.Panels {
		scenes[i] = a.proj.Project(p.Frame(), 0)
		steps[i] = p.Controller().Step()
	}
	path := filepath.Join(a.exportDir, export.FileName("png", scenes, steps))
	if err := export.WriteFile(path, "png", scenes); err != nil {
		a.log.Warn("export failed", zap.String("path", path), zap.Error(err))
		a.Status = "export failed"
		return
	}
	a.log.Info("exported", zap.String("path", path))
	a.Status = "saved " + path
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawText("GEOMETRY OF BEAUTY", gap, 30, 32, ColInk)
	a.drawText("two ratios, two ways of growing", gap, 68, 16, ColTextDim)

	now := time.Now()
	for i := range a.Panels {
		a.drawPanel(i, now)
	}

	if a.Status != "" {
		a.drawText(a.Status, gap, screenH-48, 14, ColText)
	}
	a.drawText("[SPACE] ADVANCE  [TAB] FOCUS  [R] RESET  [C/D/A] OVERLAYS  [E] EXPORT  [Q] QUIT", gap, screenH-24, 14, ColTextDim)

	if a.Overlay != overlayNone {
		a.drawOverlay()
	}
	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
