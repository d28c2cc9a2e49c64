package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ratiolab/internal/export"
	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/render"
)

const arcSegments = 32

func color(hex string, alpha float64) rl.Color {
	r, g, b := export.ParseHex(hex)
	return rl.NewColor(uint8(r), uint8(g), uint8(b), uint8(alpha*255))
}

func rect(r geom.Rect, o geom.Point) rl.Rectangle {
	return rl.NewRectangle(float32(o.X+r.X), float32(o.Y+r.Y), float32(r.W), float32(r.H))
}

func vec(p, o geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(o.X+p.X), float32(o.Y+p.Y))
}

func drawArc(arc geom.Arc, o geom.Point, width float64, col rl.Color) {
	pts := arc.Points(arcSegments)
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(vec(pts[i-1], o), vec(pts[i], o), float32(width), col)
	}
}

// drawPrimitive draws one scene primitive offset by o. active replaces the
// rectangle of the highlighted primitive.
func drawPrimitive(p render.Primitive, o geom.Point, active geom.Rect) {
	s := p.Style
	switch p.Kind {
	case render.KindArc:
		drawArc(p.Arc, o, s.StrokeWidth, color(s.Stroke, s.Opacity))
		return
	case render.KindActive:
		p.Rect = active
	}
	r := rect(p.Rect, o)
	if s.Fill != "" && s.FillOpacity > 0 {
		rl.DrawRectangleRec(r, color(s.Fill, s.FillOpacity*s.Opacity))
	}
	if s.Stroke != "" && s.StrokeWidth > 0 {
		rl.DrawRectangleLinesEx(r, float32(s.StrokeWidth), color(s.Stroke, s.Opacity))
	}
}

func (a *App) drawPanel(i int, now time.Time) {
	p := a.Panels[i]
	f := p.Frame()
	sc := a.scene(i)
	o := a.origin(i)
	x, y := int(o.X), int(o.Y)
	primary := color(f.Info.Primary, 1)

	a.drawText(f.Info.Tag, x, y-56, 14, ColTextDim)
	a.drawText(f.Info.Title, x, y-38, 26, primary)
	if i == a.Focus {
		rl.DrawRectangle(int32(x), int32(y-8), int32(sc.Width), 3, primary)
	}

	active := a.gliders[i].at(now)
	for _, prim := range sc.Prims {
		drawPrimitive(prim, o, active)
	}

	a.drawText(f.Info.Label, x, y+int(sc.Height)+12, 18, primary)
	a.drawText(fmt.Sprintf("step %d / %d", f.Step, f.Max), x+120, y+int(sc.Height)+14, 14, ColTextDim)

	btn := a.buttonRect(i)
	if f.Step < f.Max {
		rl.DrawRectangleRec(btn, primary)
		a.drawText(f.Caption, int(btn.X)+12, int(btn.Y)+8, 18, ColBg)
	} else {
		rl.DrawRectangleLinesEx(btn, 1, ColTextDim)
		a.drawText(f.Caption, int(btn.X)+12, int(btn.Y)+8, 18, ColTextDim)
	}

	if f.ShowFootnote() {
		a.drawText(f.Info.Footnote, x, int(btn.Y)+46, 12, ColText)
	}
}

func (a *App) drawOverlay() {
	rl.DrawRectangle(0, 0, screenW, screenH, ColShade)
	box := rl.NewRectangle(160, 90, screenW-320, screenH-180)
	rl.DrawRectangleRec(box, ColBg)
	x, y := int(box.X)+40, int(box.Y)+36

	switch a.Overlay {
	case overlayComparison:
		a.drawText("COMPARISON", x, y, 24, ColInk)
		a.drawComparison(x, y+50)
	case overlayDerivation:
		a.drawText("DERIVATION", x, y, 24, ColInk)
		a.drawDerivation(geom.DeriveRootTwo(), x, y+60, color(a.Panels[0].Info().Primary, 1))
		a.drawDerivation(geom.DeriveGolden(), x+480, y+60, color(a.Panels[1].Info().Primary, 1))
	case overlayArchitecture:
		a.drawText("ARCHITECTURE", x, y, 24, ColInk)
		a.drawText("Foguang Temple, East Hall (857 CE)", x, y+60, 20, color(a.Panels[0].Info().Primary, 1))
		a.drawText("Tang timber framing set out in modular units close to 1 : √2.", x, y+90, 16, ColText)
		a.drawText("Parthenon, Athens (438 BCE)", x, y+150, 20, color(a.Panels[1].Info().Primary, 1))
		a.drawText("The facade is often read as a golden rectangle.", x, y+180, 16, ColText)
	}
	a.drawText("[ESC] CLOSE", int(box.X+box.Width)-140, int(box.Y+box.Height)-30, 14, ColTextDim)
}

// drawComparison draws both rectangles at a shared height, scaled to fit.
func (a *App) drawComparison(x, y int) {
	c := geom.Compare(300)
	s := 0.6
	o := geom.Point{X: float64(x), Y: float64(y)}
	r2 := geom.Rect{W: c.RootTwoWidth, H: c.Height}.Scale(s)
	gd := geom.Rect{Y: (c.Height + 40), W: c.GoldenWidth, H: c.Height}.Scale(s)
	rl.DrawRectangleLinesEx(rect(r2, o), 3, color(a.Panels[0].Info().Primary, 1))
	rl.DrawRectangleLinesEx(rect(gd, o), 3, color(a.Panels[1].Info().Primary, 1))
	tx := x + int(c.GoldenWidth*s) + 40
	a.drawText(fmt.Sprintf("1 : √2  width %.2f", c.RootTwoWidth), tx, y+40, 18, ColText)
	a.drawText(fmt.Sprintf("1 : φ   width %.2f", c.GoldenWidth), tx, int(gd.Y)+y+40, 18, ColText)
	a.drawText(fmt.Sprintf("difference %.2f", c.Difference()), tx, int(gd.Y)+y+70, 18, ColInk)
}

func (a *App) drawDerivation(d geom.Derivation, x, y int, col rl.Color) {
	const unit = 200.0
	o := geom.Point{X: float64(x), Y: float64(y)}
	rl.DrawRectangleLinesEx(rect(d.Square.Scale(unit), o), 2, ColText)
	for _, s := range d.Segments {
		rl.DrawLineEx(vec(s.From.Scale(unit), o), vec(s.To.Scale(unit), o), 2, col)
	}
	drawArc(d.Arc.Scale(unit), o, 2, col)
	base := (d.Square.Y + d.Square.H) * unit
	rl.DrawLineEx(vec(geom.Point{Y: base}, o), vec(geom.Point{X: d.Value * unit, Y: base}, o), 2, ColInk)
	a.drawText(fmt.Sprintf("%s = %.6f", d.Name, d.Value), x, y+int(unit)+24, 18, col)
}
