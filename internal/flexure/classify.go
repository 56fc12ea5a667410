package flexure

import "github.com/gostructural/gohss/internal/aisc"

// SectionClassifier supplies the overall compactness classification for a
// round HSS. The thresholds are an external contract; callers may swap in
// a different implementation or bypass classification entirely by
// supplying the label on the member.
type SectionClassifier interface {
	ClassifyRound(dOverT, e, fy float64) aisc.Compactness
}

// AxisClassifier resolves the bending axis from the applied moment
// components about the section's strong (My) and weak (Mz) axes.
type AxisClassifier interface {
	ClassifyAxis(my, mz float64) BendingAxis
}

// TableB4Classifier classifies round HSS per Table B4.1b Case 20.
type TableB4Classifier struct{}

func (TableB4Classifier) ClassifyRound(dOverT, e, fy float64) aisc.Compactness {
	return aisc.Classify(dOverT, aisc.RoundLambdaP(e, fy), aisc.RoundLambdaR(e, fy))
}

// DominantMomentAxis resolves the bending axis to whichever principal
// axis carries the larger applied moment magnitude; ties go to the
// strong axis.
type DominantMomentAxis struct{}

func (DominantMomentAxis) ClassifyAxis(my, mz float64) BendingAxis {
	if abs(mz) > abs(my) {
		return Minor
	}
	return Major
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
