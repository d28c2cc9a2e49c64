package export

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/ratiolab/internal/render"
)

func loadFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// WritePNG rasterises the scenes with the same layout as ScenesToSVG.
func WritePNG(w io.Writer, scenes []render.Scene) error {
	if len(scenes) == 0 {
		return fmt.Errorf("export: nothing to draw")
	}
	xs, width, height := layout(scenes)

	dc := gg.NewContext(int(width+0.5), int(height+0.5))
	setHex(dc, bg, 1)
	dc.Clear()

	title, err := loadFace(22)
	if err != nil {
		return err
	}
	label, err := loadFace(13)
	if err != nil {
		return err
	}

	for i, sc := range scenes {
		dc.SetFontFace(title)
		setHex(dc, ink, 1)
		dc.DrawStringAnchored(sc.Title, xs[i], margin+titleBand/2, 0, 0.5)

		dc.Push()
		dc.Translate(xs[i], margin+titleBand)
		drawScene(dc, sc)
		if a, ok := sc.Active(); ok {
			dc.SetFontFace(label)
			setHex(dc, ink, 1)
			dc.DrawStringAnchored(sc.Label, a.Rect.X+a.Rect.W/2, a.Rect.Y+a.Rect.H/2, 0.5, 0.5)
		}
		dc.Pop()
	}
	return dc.EncodePNG(w)
}

func drawScene(dc *gg.Context, sc render.Scene) {
	for _, p := range sc.Prims {
		st := p.Style
		switch p.Kind {
		case render.KindArc:
			a := p.Arc
			dc.NewSubPath()
			dc.DrawArc(a.Center.X, a.Center.Y, a.Radius, a.Start, a.End)
			setHex(dc, st.Stroke, st.Opacity)
			dc.SetLineWidth(st.StrokeWidth)
			dc.SetLineCapRound()
			dc.Stroke()
			dc.ClearPath()
		default:
			r := p.Rect
			if st.Fill != "" {
				dc.DrawRectangle(r.X, r.Y, r.W, r.H)
				setHex(dc, st.Fill, st.FillOpacity*st.Opacity)
				dc.Fill()
			}
			if st.Stroke != "" && st.StrokeWidth > 0 {
				dc.DrawRectangle(r.X, r.Y, r.W, r.H)
				setHex(dc, st.Stroke, st.Opacity)
				dc.SetLineWidth(st.StrokeWidth)
				dc.Stroke()
			}
		}
	}
}

func setHex(dc *gg.Context, hex string, alpha float64) {
	r, g, b := ParseHex(hex)
	dc.SetRGBA255(r, g, b, int(alpha*255+0.5))
}
