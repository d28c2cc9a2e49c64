package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/panel"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayComparison
	overlayDerivation
	overlayArchitecture
)

// ComparisonHeight is the shared height of the side-by-side rectangles.
const ComparisonHeight = 300.0

// ConvergenceSeries returns the long side of the active rectangle at every
// step of both panels, normalised to the starting rectangle. The √2 sheet
// shrinks by 1/√2 per step and the golden remainder by 1/φ.
func ConvergenceSeries() (rootTwo, golden []float64) {
	for _, r := range geom.SubdivisionRects(geom.Subdivide(geom.RootTwoBase, panel.RootTwoMax)) {
		rootTwo = append(rootTwo, r.Long())
	}
	golden = append(golden, geom.GoldenRect(geom.GoldenBase).Long())
	for _, r := range geom.SpiralRemainders(geom.Whirl(geom.GoldenBase, panel.GoldenMax-1)) {
		golden = append(golden, r.Long())
	}
	normalise(rootTwo)
	normalise(golden)
	return rootTwo, golden
}

func normalise(v []float64) {
	if len(v) == 0 || v[0] == 0 {
		return
	}
	base := v[0]
	for i := range v {
		v[i] /= base
	}
}

// ComparisonChart plots ConvergenceSeries for both panels.
func ComparisonChart(width, height int) string {
	r2, g := ConvergenceSeries()
	return asciigraph.PlotMany([][]float64{r2, g},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Yellow),
		asciigraph.Caption("long side per step: 1:√2 (cyan) vs 1:φ (yellow)"),
	)
}

func bar(n int, style lipgloss.Style) string {
	if n < 1 {
		n = 1
	}
	return style.Render(strings.Repeat("█", n))
}

func (m App) comparisonView() string {
	c := geom.Compare(ComparisonHeight)
	r2 := lipgloss.NewStyle().Foreground(m.theme.RootTwo)
	gd := lipgloss.NewStyle().Foreground(m.theme.Golden)

	unit := c.GoldenWidth / 40
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Side by side at a height of "+fmt.Sprintf("%.0f", c.Height)) + "\n\n")
	fmt.Fprintf(&b, "  1 : √2  %s %.2f\n", bar(int(c.RootTwoWidth/unit), r2), c.RootTwoWidth)
	fmt.Fprintf(&b, "  1 : φ   %s %.2f\n", bar(int(c.GoldenWidth/unit), gd), c.GoldenWidth)
	b.WriteString(m.styles.subtle.Render(fmt.Sprintf("  the golden rectangle is %.2f wider", c.Difference())) + "\n\n")
	b.WriteString(ComparisonChart(48, 8) + "\n\n")
	b.WriteString(m.styles.text.Render("  √2 folds into itself: halve it and the ratio survives.") + "\n")
	b.WriteString(m.styles.text.Render("  φ grows out of itself: remove a square and the ratio survives.") + "\n")
	return b.String()
}

// derivationCanvas draws the unit square, the construction line and the arc
// that swings it onto the extended base.
func derivationCanvas(d geom.Derivation, cols, rows int) *Canvas {
	w, h, k := cellFit(geom.Phi+0.05, 1.05, cols, rows)
	c := NewCanvas(w, h)
	c.DrawRect(d.Square, k)
	for _, s := range d.Segments {
		c.DrawPolyline([]geom.Point{s.From, s.To}, k)
	}
	c.DrawPolyline(d.Arc.Points(arcSegments), k)
	base := d.Square.Y + d.Square.H
	c.DrawPolyline([]geom.Point{{X: 0, Y: base}, {X: d.Value, Y: base}}, k)
	c.DrawPolyline([]geom.Point{{X: d.Value, Y: base}, {X: d.Value, Y: 0}}, k)
	return c
}

func (m App) derivationView() string {
	r2, gd := geom.DeriveRootTwo(), geom.DeriveGolden()
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.header.Render("√2: the diagonal"),
		lipgloss.NewStyle().Foreground(m.theme.RootTwo).Render(derivationCanvas(r2, 22, 7).String()),
		m.styles.text.Render("Swing the diagonal of a unit"),
		m.styles.text.Render("square down to the base."),
		m.styles.subtle.Render(fmt.Sprintf("length %.6f", r2.Value)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.header.Render("φ: the midpoint"),
		lipgloss.NewStyle().Foreground(m.theme.Golden).Render(derivationCanvas(gd, 22, 7).String()),
		m.styles.text.Render("From the midpoint of the base,"),
		m.styles.text.Render("swing the line to the far corner."),
		m.styles.subtle.Render(fmt.Sprintf("length %.6f", gd.Value)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m App) architectureView() string {
	r2 := lipgloss.NewStyle().Bold(true).Foreground(m.theme.RootTwo)
	gd := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Golden)
	lines := []string{
		r2.Render("Foguang Temple, East Hall (857 CE)"),
		m.styles.text.Render("  Tang timber framing on Mount Wutai. Bay widths and column"),
		m.styles.text.Render("  heights are set out in modular units close to 1 : √2,"),
		m.styles.text.Render("  the proportion later codified in the Song building manual."),
		"",
		gd.Render("Parthenon, Athens (438 BCE)"),
		m.styles.text.Render("  The facade is often read as a golden rectangle, a claim"),
		m.styles.text.Render("  that depends on where the measurements are taken."),
		"",
		m.styles.subtle.Render("  One ratio halves without loss, the other grows without end."),
	}
	return strings.Join(lines, "\n")
}

func (m App) overlayView() string {
	var title, body string
	switch m.overlay {
	case overlayComparison:
		title, body = "Comparison", m.comparisonView()
	case overlayDerivation:
		title, body = "Derivation", m.derivationView()
	case overlayArchitecture:
		title, body = "Architecture", m.architectureView()
	default:
		return ""
	}
	content := m.styles.header.Render(strings.ToUpper(title)) + "\n\n" + body + "\n\n" +
		m.styles.keyHint.Render("esc close")
	return m.styles.overlay.Render(content)
}
