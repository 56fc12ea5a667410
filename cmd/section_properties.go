package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gostructural/gohss/internal/diagram"
	"github.com/gostructural/gohss/internal/section"
	"github.com/spf13/cobra"
)

var (
	secPropWidth     float64
	secPropDepth     float64
	secPropThickness float64
	secPropSketch    bool
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Derive box-section properties from outside dimensions",
	Long: `Report the derived geometry and section properties of a square or
rectangular HSS/box member: design wall thickness, clear element widths,
gross area, moments of inertia, section moduli, weak-axis radius of
gyration and torsional constant.

Examples:
  gohss section properties --width 10 --depth 10 --thickness 0.5
  gohss section properties -b 6 -d 12 -t 0.25 --sketch`,
	Run: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().Float64VarP(&secPropWidth, "width", "b", 0, "Outside width B (in) [required]")
	sectionPropertiesCmd.Flags().Float64VarP(&secPropDepth, "depth", "d", 0, "Outside depth H (in) [required]")
	sectionPropertiesCmd.Flags().Float64VarP(&secPropThickness, "thickness", "t", 0, "Nominal wall thickness (in) [required]")
	sectionPropertiesCmd.Flags().BoolVar(&secPropSketch, "sketch", false, "Show an ASCII cross-section sketch")

	sectionPropertiesCmd.MarkFlagRequired("width")
	sectionPropertiesCmd.MarkFlagRequired("depth")
	sectionPropertiesCmd.MarkFlagRequired("thickness")
}

func runSectionProperties(cmd *cobra.Command, args []string) {
	sec := section.BoxSection{B: secPropWidth, H: secPropDepth, TNom: secPropThickness}

	props, err := sec.DeriveProperties()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HSS/BOX SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outside width (B):\t%.2f in\n", sec.B)
	fmt.Fprintf(w, "  Outside depth (H):\t%.2f in\n", sec.H)
	fmt.Fprintf(w, "  Nominal thickness:\t%.3f in\n", sec.TNom)
	fmt.Fprintf(w, "  Design thickness (t):\t%.3f in\n", props.T)
	fmt.Fprintf(w, "  Clear flange width (b):\t%.3f in\n", props.ClearWidth)
	fmt.Fprintf(w, "  Clear web depth (h):\t%.3f in\n", props.ClearDepth)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gross area (Ag):\t%.3f in²\n", props.Ag)
	fmt.Fprintf(w, "  Ix:\t%.3f in⁴\n", props.Ix)
	fmt.Fprintf(w, "  Iy:\t%.3f in⁴\n", props.Iy)
	fmt.Fprintf(w, "  Sx:\t%.3f in³\n", props.Sx)
	fmt.Fprintf(w, "  Zx:\t%.3f in³\n", props.Zx)
	fmt.Fprintf(w, "  ry:\t%.3f in\n", props.Ry)
	fmt.Fprintf(w, "  J:\t%.3f in⁴\n", props.J)
	w.Flush()
	fmt.Println()

	if secPropSketch {
		fmt.Println("SECTION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Print(diagram.BoxSketch(sec.B, sec.H, props.T))
		fmt.Println()
	}
}
