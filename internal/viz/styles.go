package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header   lipgloss.Style
	subtle   lipgloss.Style
	text     lipgloss.Style
	keyHint  lipgloss.Style
	warning  lipgloss.Style
	panel    lipgloss.Style
	focused  lipgloss.Style
	overlay  lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		text:    lipgloss.NewStyle().Foreground(t.Text),
		keyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Focus).
			Padding(0, 1),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Focus).
			Padding(1, 2),
		button:   lipgloss.NewStyle().Bold(true).Foreground(t.Text).Reverse(true).Padding(0, 1),
		disabled: lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
	}
}

// Separator draws a decorative rule.
func (s styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.subtle.Render(left + " ◆ " + right)
}

// layer is one canvas drawn in one style. Later layers win where both
// have dots in the same cell.
type layer struct {
	canvas *Canvas
	style  lipgloss.Style
}

// composite renders stacked braille canvases of equal size. A cell takes
// the style of its topmost non-empty layer and the union of all dots.
func composite(layers []layer) string {
	if len(layers) == 0 {
		return ""
	}
	base := layers[0].canvas
	var b strings.Builder
	for row := 0; row < base.Height; row++ {
		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle < 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(layers[runStyle].style.Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < base.Width; col++ {
			r, top := rune(blank), -1
			for i, l := range layers {
				cell := l.canvas.Grid[row][col]
				if cell != blank {
					r |= cell
					top = i
				}
			}
			if top != runStyle {
				flush()
				runStyle = top
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
