package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gostructural/gohss/internal/aisc"
	"github.com/gostructural/gohss/internal/flexure"
	"github.com/spf13/cobra"
)

var (
	propsFile string

	propsType string
	propsAxis string

	propsFy float64
	propsE  float64

	propsAg float64
	propsS  float64
	propsZ  float64
	propsRy float64
	propsJ  float64

	propsB  float64
	propsTf float64
	propsH  float64
	propsTw float64

	propsLb float64
	propsCb float64

	propsFlangeClass string
	propsWebClass    string
)

var flexurePropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Check a rectangular member from supplied section properties",
	Long: `Compute the nominal flexural strength (Mn) of a square or rectangular
HSS/box member per AISC 360-16 Chapter F7, taking the section properties
directly instead of deriving them from outside dimensions.

Properties may come from flags or from a JSON member file. Supplied
values are validated for positivity; ry, J and Ag are needed only when
lateral-torsional buckling applies, and the element flats (b, tf, h, tw)
may be omitted when the matching compactness label is supplied.

Examples:
  gohss flexure props --type hss --fy 46 --ag 17.7 --s 53.9 --z 63.5 \
    --ry 3.90 --j 403 --b 8.61 --tf 0.465 --web 8.61 --tw 0.465 --lb 96

  # From a JSON member file
  gohss flexure props --file member.json

Example JSON member file:
{
  "section_type": "HSS",
  "fy": 46,
  "ag": 17.7,
  "s": 53.9,
  "z": 63.5,
  "ry": 3.90,
  "j": 403,
  "b": 8.61,
  "tf": 0.465,
  "h": 8.61,
  "tw": 0.465,
  "lb": 96
}`,
	Run: runFlexureProps,
}

func init() {
	flexureCmd.AddCommand(flexurePropsCmd)

	flexurePropsCmd.Flags().StringVarP(&propsFile, "file", "f", "", "Path to JSON member file")

	flexurePropsCmd.Flags().StringVar(&propsType, "type", "hss", "Section type: hss or box")
	flexurePropsCmd.Flags().StringVar(&propsAxis, "axis", "major", "Bending axis: major or minor")

	flexurePropsCmd.Flags().Float64Var(&propsFy, "fy", 0, "Yield strength Fy (ksi)")
	flexurePropsCmd.Flags().Float64Var(&propsE, "e", aisc.Es, "Elastic modulus E (ksi)")

	flexurePropsCmd.Flags().Float64Var(&propsAg, "ag", 0, "Gross area Ag (in²)")
	flexurePropsCmd.Flags().Float64Var(&propsS, "s", 0, "Elastic section modulus S (in³)")
	flexurePropsCmd.Flags().Float64Var(&propsZ, "z", 0, "Plastic section modulus Z (in³)")
	flexurePropsCmd.Flags().Float64Var(&propsRy, "ry", 0, "Weak-axis radius of gyration ry (in)")
	flexurePropsCmd.Flags().Float64Var(&propsJ, "j", 0, "Torsional constant J (in⁴)")

	flexurePropsCmd.Flags().Float64Var(&propsB, "b", 0, "Clear flange width b (in)")
	flexurePropsCmd.Flags().Float64Var(&propsTf, "tf", 0, "Flange thickness tf (in)")
	flexurePropsCmd.Flags().Float64Var(&propsH, "web", 0, "Clear web depth h (in)")
	flexurePropsCmd.Flags().Float64Var(&propsTw, "tw", 0, "Web thickness tw (in)")

	flexurePropsCmd.Flags().Float64Var(&propsLb, "lb", 0, "Unbraced length Lb (in)")
	flexurePropsCmd.Flags().Float64Var(&propsCb, "cb", 1.0, "Moment gradient factor Cb")

	flexurePropsCmd.Flags().StringVar(&propsFlangeClass, "flange-class", "", "Supplied flange compactness: compact, noncompact or slender")
	flexurePropsCmd.Flags().StringVar(&propsWebClass, "web-class", "", "Supplied web compactness: compact, noncompact or slender")
}

func runFlexureProps(cmd *cobra.Command, args []string) {
	var member *flexure.RectangularMember

	if propsFile != "" {
		m, err := flexure.LoadRectangularMember(propsFile)
		if err != nil {
			fmt.Printf("Error loading member: %v\n", err)
			return
		}
		member = m
	} else {
		st, err := flexure.ParseSectionType(propsType)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		axis, err := flexure.ParseBendingAxis(propsAxis)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		flangeClass, err := aisc.ParseCompactness(propsFlangeClass)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		webClass, err := aisc.ParseCompactness(propsWebClass)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		member = &flexure.RectangularMember{
			SectionType:       st,
			BendingAxis:       axis,
			Fy:                propsFy,
			E:                 propsE,
			Ag:                propsAg,
			S:                 propsS,
			Z:                 propsZ,
			Ry:                propsRy,
			J:                 propsJ,
			B:                 propsB,
			Tf:                propsTf,
			H:                 propsH,
			Tw:                propsTw,
			Lb:                propsLb,
			Cb:                propsCb,
			FlangeCompactness: flangeClass,
			WebCompactness:    webClass,
		}
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

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section type:\t%s\n", member.SectionType)
	fmt.Fprintf(w, "  Fy:\t%.1f ksi\n", member.Fy)
	fmt.Fprintf(w, "  Ag:\t%.3f in²\n", member.Ag)
	fmt.Fprintf(w, "  S:\t%.3f in³\n", member.S)
	fmt.Fprintf(w, "  Z:\t%.3f in³\n", member.Z)
	if member.Ry > 0 {
		fmt.Fprintf(w, "  ry:\t%.3f in\n", member.Ry)
	}
	if member.J > 0 {
		fmt.Fprintf(w, "  J:\t%.3f in⁴\n", member.J)
	}
	fmt.Fprintf(w, "  Lb:\t%.1f in\n", member.Lb)
	w.Flush()
	fmt.Println()

	printRectangularClassification(result)
	printRectangularIntermediates(result)
	printCandidates(result)
	printGoverning(result)
}
