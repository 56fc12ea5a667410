package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gostructural/gohss/internal/aisc"
	"github.com/gostructural/gohss/internal/flexure"
)

// printCandidates writes the per-limit-state candidate table.
func printCandidates(res *flexure.CheckResult) {
	fmt.Println("LIMIT STATES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range res.Candidates {
		if !c.Applicable {
			fmt.Fprintf(w, "  %s:\tn/a (does not govern)\n", c.LimitState)
			continue
		}
		marker := ""
		if c.LimitState == res.GoverningLimitState {
			marker = "  ◄ governs"
		}
		fmt.Fprintf(w, "  %s:\t%.2f kip-in%s\n", c.LimitState, c.Mn, marker)
	}
	w.Flush()
	fmt.Println()
}

// printGoverning writes the governing capacity box and status line.
func printGoverning(res *flexure.CheckResult) {
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  NOMINAL STRENGTH Mn = %.2f kip-in     \n", res.Mn)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Code: %s, Chapter %s\n", res.Code, res.Chapter)
	fmt.Printf("  Governing limit state: %s\n", res.GoverningLimitState)
	fmt.Printf("  Status: %s\n", res.Status)
	fmt.Println()
}

// printRectangularClassification writes the slenderness table for a
// Chapter F7 check.
func printRectangularClassification(res *flexure.CheckResult) {
	fmt.Println("ELEMENT CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if res.FlangeSlenderness > 0 {
		fmt.Fprintf(w, "  Flange b/t:\t%.2f\n", res.FlangeSlenderness)
	}
	fmt.Fprintf(w, "  Flange λp / λr:\t%.2f / %.2f\n", res.FlangeLambdaP, res.FlangeLambdaR)
	fmt.Fprintf(w, "  Flange:\t%s\n", res.FlangeCompactness)
	if res.WebSlenderness > 0 {
		fmt.Fprintf(w, "  Web h/t:\t%.2f\n", res.WebSlenderness)
	}
	fmt.Fprintf(w, "  Web λp / λr:\t%.2f / %.2f\n", res.WebLambdaP, res.WebLambdaR)
	fmt.Fprintf(w, "  Web:\t%s\n", res.WebCompactness)
	fmt.Fprintf(w, "  Bending axis:\t%s\n", res.BendingAxis)
	w.Flush()
	fmt.Println()
}

// printRectangularIntermediates writes LTB boundary lengths and
// slender-flange effective properties when present.
func printRectangularIntermediates(res *flexure.CheckResult) {
	fmt.Println("INTERMEDIATE VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Plastic moment (Mp):\t%.2f kip-in\n", res.Mp)
	if res.Lp > 0 {
		fmt.Fprintf(w, "  Lp:\t%.2f in\n", res.Lp)
		fmt.Fprintf(w, "  Lr:\t%.2f in\n", res.Lr)
	}
	if res.EffectiveWidth > 0 {
		fmt.Fprintf(w, "  Effective width (be):\t%.3f in\n", res.EffectiveWidth)
		fmt.Fprintf(w, "  Effective modulus (Se):\t%.3f in³\n", res.EffectiveModulus)
	}
	w.Flush()
	fmt.Println()
}

// printRoundClassification writes the classification table for a Chapter
// F8 check.
func printRoundClassification(res *flexure.CheckResult, e, fy float64) {
	fmt.Println("CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  D/t:\t%.2f\n", res.DOverT)
	fmt.Fprintf(w, "  λp / λr:\t%.2f / %.2f\n", aisc.RoundLambdaP(e, fy), aisc.RoundLambdaR(e, fy))
	fmt.Fprintf(w, "  Applicability limit (0.45·E/Fy):\t%.2f\n", aisc.RoundFlexureLimit(e, fy))
	fmt.Fprintf(w, "  Section:\t%s\n", res.Compactness)
	fmt.Fprintf(w, "  Plastic moment (Mp):\t%.2f kip-in\n", res.Mp)
	w.Flush()
	fmt.Println()
}
