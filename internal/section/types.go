package section

import (
	"fmt"

	"github.com/gostructural/gohss/internal/aisc"
)

// BoxSection represents a square or rectangular HSS/box member by its
// nominal outside dimensions. All dimensions are in inches.
type BoxSection struct {
	B    float64 `json:"b"`     // outside width
	H    float64 `json:"h"`     // outside depth
	TNom float64 `json:"t_nom"` // nominal wall thickness
}

// BoxProperties holds the derived geometry and section properties of a
// rectangular HSS/box section.
type BoxProperties struct {
	T          float64 // design wall thickness (0.93 t_nom)
	ClearWidth float64 // b = B - 3t, flat flange width
	ClearDepth float64 // h = H - 3t, flat web depth

	Ag float64 // gross area (in²)
	Ix float64 // moment of inertia, strong axis (in⁴)
	Iy float64 // moment of inertia, weak axis (in⁴)
	Sx float64 // elastic section modulus, strong axis (in³)
	Zx float64 // plastic section modulus, strong axis (in³)
	Ry float64 // radius of gyration, weak axis (in)
	J  float64 // torsional constant, thin-walled approximation (in⁴)
}

// IsSquare reports whether the section has equal outside width and depth.
func (s BoxSection) IsSquare() bool {
	return s.B == s.H
}

// DesignThickness returns the design wall thickness per AISC B4.2.
func (s BoxSection) DesignThickness() float64 {
	return aisc.DesignThicknessFactor * s.TNom
}

// Validate checks the nominal dimensions for degeneracy. The derived clear
// widths must remain positive after the corner allowance of 3t is removed.
func (s BoxSection) Validate() error {
	t := s.DesignThickness()
	if t <= 0 {
		return &InvalidGeometryError{msg: fmt.Sprintf("wall thickness must be positive: t_nom=%.4f", s.TNom)}
	}
	if s.B-3*t <= 0 {
		return &InvalidGeometryError{msg: fmt.Sprintf("outside width too small for wall thickness: B=%.4f, t=%.4f", s.B, t)}
	}
	if s.H-3*t <= 0 {
		return &InvalidGeometryError{msg: fmt.Sprintf("outside depth too small for wall thickness: H=%.4f, t=%.4f", s.H, t)}
	}
	return nil
}

// RoundSection represents a round HSS member by outside diameter and wall
// thickness, in inches.
type RoundSection struct {
	D float64 `json:"d"` // outside diameter
	T float64 `json:"t"` // wall thickness
}

// RoundProperties holds the derived section properties of a round HSS.
type RoundProperties struct {
	A float64 // gross area (in²)
	I float64 // moment of inertia (in⁴)
	S float64 // elastic section modulus (in³)
	Z float64 // plastic section modulus (in³)
}

// Validate checks the round section for degeneracy.
func (s RoundSection) Validate() error {
	if s.T <= 0 {
		return &InvalidGeometryError{msg: fmt.Sprintf("wall thickness must be positive: t=%.4f", s.T)}
	}
	if s.D-2*s.T <= 0 {
		return &InvalidGeometryError{msg: fmt.Sprintf("diameter too small for wall thickness: D=%.4f, t=%.4f", s.D, s.T)}
	}
	return nil
}

// InvalidGeometryError reports degenerate or non-positive section
// dimensions that would otherwise produce meaningless derived properties.
type InvalidGeometryError struct {
	msg string
}

func (e *InvalidGeometryError) Error() string {
	return "invalid geometry: " + e.msg
}
