package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ratiolab/internal/render"
)

const (
	margin    = 40.0
	titleBand = 40.0
	gap       = 40.0
	bg        = "#fafaf9"
	ink       = "#292524"
)

// layout returns the x offset of each scene and the overall canvas size.
func layout(scenes []render.Scene) (xs []float64, w, h float64) {
	x := margin
	maxH := 0.0
	for i, sc := range scenes {
		if i > 0 {
			x += gap
		}
		xs = append(xs, x)
		x += sc.Width
		if sc.Height > maxH {
			maxH = sc.Height
		}
	}
	return xs, x + margin, maxH + titleBand + 2*margin
}

// ScenesToSVG lays the scenes out left to right on one SVG document.
func ScenesToSVG(scenes []render.Scene) string {
	if len(scenes) == 0 {
		return ""
	}
	xs, width, height := layout(scenes)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg))

	for i, sc := range scenes {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="serif" font-size="24" fill="%s">%s</text>
`, xs[i], margin+titleBand/2, ink, escape(sc.Title)))
		sb.WriteString(fmt.Sprintf(`<g transform="translate(%.1f,%.1f)">
`, xs[i], margin+titleBand))
		writeScene(&sb, sc)
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeScene(sb *strings.Builder, sc render.Scene) {
	for _, p := range sc.Prims {
		switch p.Kind {
		case render.KindArc:
			sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>
`, p.Arc.Path(), p.Style.Stroke, p.Style.StrokeWidth))
		default:
			sb.WriteString(rectElement(p))
		}
	}
	if a, ok := sc.Active(); ok {
		r := a.Rect
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-size="14" fill="%s">%s</text>
`, r.X+r.W/2, r.Y+r.H/2, ink, escape(sc.Label)))
	}
}

func rectElement(p render.Primitive) string {
	fill := "none"
	if p.Style.Fill != "" {
		fill = p.Style.Fill
	}
	stroke := "none"
	if p.Style.Stroke != "" {
		stroke = p.Style.Stroke
	}
	return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="%.2f" opacity="%.2f"/>
`, p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, fill, p.Style.FillOpacity, stroke, p.Style.StrokeWidth, p.Style.Opacity)
}

// ActiveSVG renders only the highlighted element of a scene as a snippet.
func ActiveSVG(sc render.Scene) string {
	a, ok := sc.Active()
	if !ok {
		return ""
	}
	return strings.TrimSpace(rectElement(a))
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
