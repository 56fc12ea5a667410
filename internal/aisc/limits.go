package aisc

import "math"

// AISC 360-16 Constants

const (
	// Code is the governing specification for all checks in this tool.
	Code = "AISC 360-16"

	// Chapter designations for flexural member checks
	ChapterRectangular = "F7" // square/rectangular HSS and box sections
	ChapterRound       = "F8" // round HSS

	// DesignThicknessFactor converts nominal wall thickness to design
	// wall thickness for electric-resistance-welded HSS (Section B4.2)
	DesignThicknessFactor = 0.93

	// Modulus of elasticity of structural steel
	Es = 29000.0 // ksi

	// Effective-width coefficients for slender flanges (Eq. F7-4 / F7-5)
	SlenderFlangeCoeffHSS = 0.38
	SlenderFlangeCoeffBox = 0.34
)

// FlangeLambdaP returns the compact limit for flanges of rectangular HSS
// and box sections in flexure.
// Table B4.1b Case 17
func FlangeLambdaP(e, fy float64) float64 {
	return 1.12 * math.Sqrt(e/fy)
}

// FlangeLambdaR returns the noncompact limit for flanges of rectangular
// HSS and box sections in flexure.
// Table B4.1b Case 17
func FlangeLambdaR(e, fy float64) float64 {
	return 1.40 * math.Sqrt(e/fy)
}

// WebLambdaP returns the compact limit for webs of rectangular HSS and
// box sections in flexure.
// Table B4.1b Case 19
func WebLambdaP(e, fy float64) float64 {
	return 2.42 * math.Sqrt(e/fy)
}

// WebLambdaR returns the noncompact limit for webs of rectangular HSS and
// box sections in flexure.
// Table B4.1b Case 19
func WebLambdaR(e, fy float64) float64 {
	return 5.70 * math.Sqrt(e/fy)
}

// RoundLambdaP returns the compact D/t limit for round HSS in flexure.
// Table B4.1b Case 20
func RoundLambdaP(e, fy float64) float64 {
	return 0.07 * e / fy
}

// RoundLambdaR returns the noncompact D/t limit for round HSS in flexure.
// Table B4.1b Case 20
func RoundLambdaR(e, fy float64) float64 {
	return 0.31 * e / fy
}

// RoundFlexureLimit returns the D/t ratio above which Chapter F8 no
// longer applies (Section F8).
func RoundFlexureLimit(e, fy float64) float64 {
	return 0.45 * e / fy
}

// Classify places a slenderness ratio against its compact and noncompact
// limits per Section B4.1.
func Classify(lambda, lambdaP, lambdaR float64) Compactness {
	switch {
	case lambda <= lambdaP:
		return Compact
	case lambda <= lambdaR:
		return Noncompact
	default:
		return Slender
	}
}
