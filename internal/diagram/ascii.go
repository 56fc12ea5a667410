package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// CapacityCurveData holds a sampled Mn-Lb curve plus the member's
// evaluated point and the LTB boundary lengths.
type CapacityCurveData struct {
	Lb []float64 // unbraced lengths (in)
	Mn []float64 // governing nominal strengths (kip-in)

	LbActual float64 // the member's unbraced length
	MnActual float64 // the member's governing strength
	Lp       float64 // compact LTB boundary, 0 when LTB does not apply
	Lr       float64 // noncompact LTB boundary, 0 when LTB does not apply
}

// RenderCapacityCurve renders the available-moment vs unbraced-length
// curve as an ASCII chart for terminal output.
func RenderCapacityCurve(data CapacityCurveData) string {
	if len(data.Mn) == 0 || len(data.Lb) == 0 {
		return ""
	}

	graph := asciigraph.Plot(data.Mn,
		asciigraph.Height(12),
		asciigraph.Width(62),
		asciigraph.Caption(fmt.Sprintf("Mn (kip-in) vs Lb, 0 to %.0f in", data.Lb[len(data.Lb)-1])),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	if data.Lp > 0 && data.Lr > 0 {
		fmt.Fprintf(&sb, "  Lp = %.1f in    Lr = %.1f in\n", data.Lp, data.Lr)
	}
	fmt.Fprintf(&sb, "  member: Lb = %.1f in, Mn = %.2f kip-in\n", data.LbActual, data.MnActual)

	return sb.String()
}

// BoxSketch draws a proportioned cross-section of a rectangular HSS/box
// on a fixed character canvas. Terminal cells are roughly twice as tall
// as wide, so the horizontal scale is doubled.
func BoxSketch(b, h, t float64) string {
	if b <= 0 || h <= 0 || t <= 0 {
		return ""
	}

	const maxRows = 15
	rows := maxRows
	cols := int(math.Round(float64(rows) * 2 * b / h))
	if cols < 6 {
		cols = 6
	}
	if cols > 60 {
		cols = 60
		rows = int(math.Round(float64(cols) / 2 * h / b))
		if rows < 4 {
			rows = 4
		}
	}

	wallRows := int(math.Round(t / h * float64(rows)))
	if wallRows < 1 {
		wallRows = 1
	}
	wallCols := int(math.Round(t / b * float64(cols)))
	if wallCols < 1 {
		wallCols = 1
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		sb.WriteString("  ")
		for col := 0; col < cols; col++ {
			inWall := r < wallRows || r >= rows-wallRows ||
				col < wallCols || col >= cols-wallCols
			if inWall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  B = %.2f in, H = %.2f in, t = %.3f in\n", b, h, t)

	return sb.String()
}
