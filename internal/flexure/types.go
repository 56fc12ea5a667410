package flexure

import (
	"fmt"
	"strings"

	"github.com/gostructural/gohss/internal/aisc"
)

// SectionType identifies the member's cross-section family. HSS and Box
// share the Chapter F7 formulas but use different slender-flange
// effective-width coefficients.
type SectionType int

const (
	SectionTypeUnset SectionType = iota
	HSS                          // cold-formed square/rectangular HSS
	Box                          // built-up box section
	RoundHSS                     // round HSS (Chapter F8)
)

func (t SectionType) String() string {
	switch t {
	case HSS:
		return "HSS"
	case Box:
		return "Box"
	case RoundHSS:
		return "Round HSS"
	default:
		return "Unset"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON member files.
func (t SectionType) MarshalText() ([]byte, error) {
	if t == SectionTypeUnset {
		return []byte(""), nil
	}
	return []byte(t.String()), nil
}

// UnmarshalText parses a section type label case-insensitively.
func (t *SectionType) UnmarshalText(text []byte) error {
	parsed, err := ParseSectionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseSectionType converts a label to a SectionType value.
func ParseSectionType(s string) (SectionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SectionTypeUnset, nil
	case "hss":
		return HSS, nil
	case "box":
		return Box, nil
	case "round hss", "round_hss", "round-hss", "round":
		return RoundHSS, nil
	}
	return SectionTypeUnset, fmt.Errorf("unknown section type: %q", s)
}

// BendingAxis identifies the principal axis the member bends about.
type BendingAxis int

const (
	AxisUnset BendingAxis = iota
	Major
	Minor
)

func (a BendingAxis) String() string {
	switch a {
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	default:
		return "Unset"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON member files.
func (a BendingAxis) MarshalText() ([]byte, error) {
	if a == AxisUnset {
		return []byte(""), nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText parses a bending axis label case-insensitively.
func (a *BendingAxis) UnmarshalText(text []byte) error {
	parsed, err := ParseBendingAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseBendingAxis converts a label to a BendingAxis value.
func ParseBendingAxis(s string) (BendingAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return AxisUnset, nil
	case "major", "strong":
		return Major, nil
	case "minor", "weak":
		return Minor, nil
	}
	return AxisUnset, fmt.Errorf("unknown bending axis: %q", s)
}

// LimitState names a flexural limit state.
type LimitState string

const (
	Yielding                 LimitState = "Yielding"
	FlangeLocalBuckling      LimitState = "Flange Local Buckling"
	WebLocalBuckling         LimitState = "Web Local Buckling"
	LateralTorsionalBuckling LimitState = "Lateral-Torsional Buckling"
	LocalBuckling            LimitState = "Local Buckling"
)

// Candidate is one limit state's nominal strength. A limit state that
// does not apply to the member (compact element, square section under
// LTB, minor-axis bending) is reported with Applicable false and carries
// no Mn value.
type Candidate struct {
	LimitState LimitState
	Mn         float64
	Applicable bool
}

// CheckResult is the terminal artifact of a flexural strength check. It
// is created fresh per invocation; nothing in it is shared or mutated
// afterwards.
type CheckResult struct {
	Code    string
	Chapter string

	SectionType SectionType
	BendingAxis BendingAxis

	// Governing strength
	Mn                  float64
	GoverningLimitState LimitState
	Mp                  float64

	// Per-limit-state candidates in declared priority order. Ties on the
	// governing value resolve to the earliest entry.
	Candidates []Candidate

	// Rectangular classification and slenderness intermediates
	FlangeCompactness aisc.Compactness
	WebCompactness    aisc.Compactness
	FlangeSlenderness float64
	FlangeLambdaP     float64
	FlangeLambdaR     float64
	WebSlenderness    float64
	WebLambdaP        float64
	WebLambdaR        float64

	// Lateral-torsional buckling intermediates
	Lp float64
	Lr float64

	// Slender-flange intermediates
	EffectiveWidth   float64
	EffectiveModulus float64

	// Round classification intermediates
	Compactness aisc.Compactness
	DOverT      float64

	Status string
}

// CandidateFor returns the candidate for the named limit state.
func (r *CheckResult) CandidateFor(ls LimitState) (Candidate, bool) {
	for _, c := range r.Candidates {
		if c.LimitState == ls {
			return c, true
		}
	}
	return Candidate{}, false
}
