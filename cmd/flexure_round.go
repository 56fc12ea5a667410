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
	roundDiameter  float64
	roundThickness float64

	roundFy float64
	roundE  float64

	roundS float64
	roundZ float64

	roundClass string
)

var flexureRoundCmd = &cobra.Command{
	Use:   "round",
	Short: "Check a round HSS member",
	Long: `Compute the nominal flexural strength (Mn) of a round HSS member per
AISC 360-16 Chapter F8.

The chapter applies only while D/t < 0.45·E/Fy; a member beyond that
limit is rejected rather than extrapolated. Section moduli may be
supplied from a shape catalog with --s and --z, or derived from the
diameter and wall thickness when omitted.

Examples:
  # HSS12.75x0.25 of A500 Gr. B steel
  gohss flexure round --diameter 12.75 --thickness 0.25 --fy 42

  # Catalog moduli and a supplied classification
  gohss flexure round -d 12 -t 0.25 --fy 42 --s 26.6 --z 34.5 --class noncompact`,
	Run: runFlexureRound,
}

func init() {
	flexureCmd.AddCommand(flexureRoundCmd)

	flexureRoundCmd.Flags().Float64VarP(&roundDiameter, "diameter", "d", 0, "Outside diameter D (in) [required]")
	flexureRoundCmd.Flags().Float64VarP(&roundThickness, "thickness", "t", 0, "Wall thickness t (in) [required]")

	flexureRoundCmd.Flags().Float64Var(&roundFy, "fy", 42, "Yield strength Fy (ksi)")
	flexureRoundCmd.Flags().Float64Var(&roundE, "e", aisc.Es, "Elastic modulus E (ksi)")

	flexureRoundCmd.Flags().Float64Var(&roundS, "s", 0, "Elastic section modulus S (in³), derived when omitted")
	flexureRoundCmd.Flags().Float64Var(&roundZ, "z", 0, "Plastic section modulus Z (in³), derived when omitted")

	flexureRoundCmd.Flags().StringVar(&roundClass, "class", "", "Supplied compactness: compact, noncompact or slender")

	flexureRoundCmd.MarkFlagRequired("diameter")
	flexureRoundCmd.MarkFlagRequired("thickness")
}

func runFlexureRound(cmd *cobra.Command, args []string) {
	class, err := aisc.ParseCompactness(roundClass)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	member := &flexure.RoundMember{
		Fy:          roundFy,
		E:           roundE,
		D:           roundDiameter,
		T:           roundThickness,
		S:           roundS,
		Z:           roundZ,
		Compactness: class,
	}

	checker := flexure.NewChecker()
	result, err := checker.CheckRound(member)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ROUND HSS FLEXURE CHECK - AISC 360-16 F8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outside diameter (D):\t%.3f in\n", member.D)
	fmt.Fprintf(w, "  Wall thickness (t):\t%.3f in\n", member.T)
	fmt.Fprintf(w, "  Fy:\t%.1f ksi\n", member.Fy)
	fmt.Fprintf(w, "  E:\t%.0f ksi\n", roundE)
	w.Flush()
	fmt.Println()

	printRoundClassification(result, roundE, member.Fy)
	printCandidates(result)
	printGoverning(result)
}
