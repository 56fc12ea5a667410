package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportCapacityCurve writes the Mn-Lb curve to an image file. The output
// format follows the file extension (png, svg, or pdf).
func ExportCapacityCurve(data CapacityCurveData, filename string) error {
	switch ext := filepath.Ext(filename); ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported image format %q: use png, svg or pdf", ext)
	}
	if len(data.Lb) == 0 || len(data.Lb) != len(data.Mn) {
		return fmt.Errorf("capacity curve data is empty or mismatched")
	}

	p := plot.New()
	p.Title.Text = "Available Flexural Strength"
	p.X.Label.Text = "Unbraced Length Lb (in)"
	p.Y.Label.Text = "Mn (kip-in)"

	curve := make(plotter.XYs, len(data.Lb))
	for i := range data.Lb {
		curve[i] = plotter.XY{X: data.Lb[i], Y: data.Mn[i]}
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 180, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("Mn", line)

	member := plotter.XYs{{X: data.LbActual, Y: data.MnActual}}
	scatter, err := plotter.NewScatter(member)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add("member", scatter)

	return p.Save(7*vg.Inch, 4.5*vg.Inch, filename)
}
