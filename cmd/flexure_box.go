package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gostructural/gohss/internal/aisc"
	"github.com/gostructural/gohss/internal/diagram"
	"github.com/gostructural/gohss/internal/flexure"
	"github.com/gostructural/gohss/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Geometry inputs
	boxWidth     float64
	boxDepth     float64
	boxThickness float64

	// Material inputs
	boxFy float64
	boxE  float64

	// Bracing inputs
	boxLb float64
	boxCb float64

	// Options
	boxBuiltUp     bool
	boxShowDiagram bool
	boxExportFile  string
)

var flexureBoxCmd = &cobra.Command{
	Use:   "box",
	Short: "Check a square/rectangular HSS or box from outside dimensions",
	Long: `Compute the nominal flexural strength (Mn) of a square or rectangular
HSS/box member from its nominal outside dimensions per AISC 360-16
Chapter F7.

Section properties are derived internally: the design wall thickness is
0.93·t_nom, clear element widths are B−3t and H−3t, and Ix, Zx, ry and J
follow the outer-minus-inner box closed forms.

The check evaluates yielding, flange local buckling, web local buckling
and (for non-square sections in major-axis bending) lateral-torsional
buckling, and reports the governing minimum.

Examples:
  # HSS10x10x1/2 of A500 Gr. B steel, braced at 6 ft
  gohss flexure box --width 10 --depth 10 --thickness 0.5 --fy 46 --lb 72

  # Built-up box with the F7-5 effective-width coefficient
  gohss flexure box -b 16 -d 24 -t 0.75 --fy 50 --lb 240 --box

  # Show the capacity curve and export it as an image
  gohss flexure box -b 6 -d 12 -t 0.25 --fy 46 --lb 120 --diagram -o curve.png`,
	Run: runFlexureBox,
}

func init() {
	flexureCmd.AddCommand(flexureBoxCmd)

	// Geometry flags
	flexureBoxCmd.Flags().Float64VarP(&boxWidth, "width", "b", 0, "Outside width B (in) [required]")
	flexureBoxCmd.Flags().Float64VarP(&boxDepth, "depth", "d", 0, "Outside depth H (in) [required]")
	flexureBoxCmd.Flags().Float64VarP(&boxThickness, "thickness", "t", 0, "Nominal wall thickness (in) [required]")

	// Material flags
	flexureBoxCmd.Flags().Float64Var(&boxFy, "fy", 46, "Yield strength Fy (ksi)")
	flexureBoxCmd.Flags().Float64Var(&boxE, "e", aisc.Es, "Elastic modulus E (ksi)")

	// Bracing flags
	flexureBoxCmd.Flags().Float64VarP(&boxLb, "lb", "l", 0, "Unbraced length Lb (in)")
	flexureBoxCmd.Flags().Float64Var(&boxCb, "cb", 1.0, "Moment gradient factor Cb")

	// Options
	flexureBoxCmd.Flags().BoolVar(&boxBuiltUp, "box", false, "Treat as a built-up box section instead of cold-formed HSS")
	flexureBoxCmd.Flags().BoolVar(&boxShowDiagram, "diagram", false, "Show ASCII section sketch and capacity curve")
	flexureBoxCmd.Flags().StringVarP(&boxExportFile, "output", "o", "", "Export capacity curve to file (png, svg, pdf)")

	flexureBoxCmd.MarkFlagRequired("width")
	flexureBoxCmd.MarkFlagRequired("depth")
	flexureBoxCmd.MarkFlagRequired("thickness")
}

func runFlexureBox(cmd *cobra.Command, args []string) {
	sec := section.BoxSection{B: boxWidth, H: boxDepth, TNom: boxThickness}

	st := flexure.HSS
	if boxBuiltUp {
		st = flexure.Box
	}

	member, err := flexure.NewBoxMember(sec, st, boxFy, boxE, boxLb, boxCb)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	checker := flexure.NewChecker()
	result, err := checker.CheckRectangular(member)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RECTANGULAR HSS/BOX FLEXURE CHECK - AISC 360-16 F7")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outside width (B):\t%.2f in\n", sec.B)
	fmt.Fprintf(w, "  Outside depth (H):\t%.2f in\n", sec.H)
	fmt.Fprintf(w, "  Nominal thickness:\t%.3f in\n", sec.TNom)
	fmt.Fprintf(w, "  Design thickness (t):\t%.3f in\n", sec.DesignThickness())
	fmt.Fprintf(w, "  Section type:\t%s\n", st)
	fmt.Fprintf(w, "  Fy:\t%.1f ksi\n", boxFy)
	fmt.Fprintf(w, "  E:\t%.0f ksi\n", boxE)
	fmt.Fprintf(w, "  Lb:\t%.1f in\n", boxLb)
	fmt.Fprintf(w, "  Cb:\t%.2f\n", boxCb)
	w.Flush()
	fmt.Println()

	// Derived properties
	fmt.Println("DERIVED SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ag:\t%.3f in²\n", member.Ag)
	fmt.Fprintf(w, "  Sx:\t%.3f in³\n", member.S)
	fmt.Fprintf(w, "  Zx:\t%.3f in³\n", member.Z)
	fmt.Fprintf(w, "  ry:\t%.3f in\n", member.Ry)
	fmt.Fprintf(w, "  J:\t%.3f in⁴\n", member.J)
	w.Flush()
	fmt.Println()

	printRectangularClassification(result)
	printRectangularIntermediates(result)
	printCandidates(result)
	printGoverning(result)

	if boxShowDiagram || boxExportFile != "" {
		curve, ok := buildCapacityCurve(checker, member, result)
		if !ok {
			return
		}

		if boxShowDiagram {
			fmt.Println("SECTION:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			fmt.Print(diagram.BoxSketch(sec.B, sec.H, sec.DesignThickness()))
			fmt.Println()
			fmt.Println("CAPACITY CURVE:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			fmt.Print(diagram.RenderCapacityCurve(curve))
			fmt.Println()
		}

		if boxExportFile != "" {
			if err := diagram.ExportCapacityCurve(curve, boxExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
				return
			}
			fmt.Printf("  Capacity curve exported to %s\n", boxExportFile)
			fmt.Println()
		}
	}
}

// buildCapacityCurve samples Mn over a range of unbraced lengths wide
// enough to show both LTB boundaries when they exist.
func buildCapacityCurve(checker *flexure.Checker, member *flexure.RectangularMember, result *flexure.CheckResult) (diagram.CapacityCurveData, bool) {
	maxLb := 2 * member.Lb
	if result.Lr > maxLb {
		maxLb = 1.25 * result.Lr
	}
	if maxLb <= 0 {
		maxLb = 120
	}

	lbs, mns, err := checker.CapacityCurve(*member, maxLb, 80)
	if err != nil {
		fmt.Printf("Error building capacity curve: %v\n", err)
		return diagram.CapacityCurveData{}, false
	}

	return diagram.CapacityCurveData{
		Lb:       lbs,
		Mn:       mns,
		LbActual: member.Lb,
		MnActual: result.Mn,
		Lp:       result.Lp,
		Lr:       result.Lr,
	}, true
}
