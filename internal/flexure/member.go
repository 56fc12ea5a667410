package flexure

import (
	"encoding/json"
	"os"

	"github.com/gostructural/gohss/internal/aisc"
	"github.com/gostructural/gohss/internal/section"
)

// RectangularMember is the direct-properties input for a Chapter F7
// check. Section properties are taken as given and validated for
// positivity; no geometric derivation is performed. Material strengths
// are in ksi, lengths in inches.
type RectangularMember struct {
	SectionType SectionType `json:"section_type"`
	BendingAxis BendingAxis `json:"bending_axis,omitempty"`

	// Material
	Fy float64 `json:"fy"`
	E  float64 `json:"e,omitempty"` // defaults to 29000 ksi

	// Section properties
	Ag float64 `json:"ag,omitempty"`
	S  float64 `json:"s"`
	Z  float64 `json:"z"`
	Ry float64 `json:"ry,omitempty"` // lateral-torsional buckling only
	J  float64 `json:"j,omitempty"`  // lateral-torsional buckling only

	// Element flats for local buckling. Omit both b and tf (or h and tw)
	// only when the matching compactness label is supplied.
	B  float64 `json:"b,omitempty"`  // clear flange width
	Tf float64 `json:"tf,omitempty"` // flange thickness
	H  float64 `json:"h,omitempty"`  // clear web depth
	Tw float64 `json:"tw,omitempty"` // web thickness

	// Unbraced length and moment gradient factor
	Lb float64 `json:"lb,omitempty"`
	Cb float64 `json:"cb,omitempty"` // defaults to 1.0

	// Applied moments; used to resolve the bending axis when
	// bending_axis is not given.
	My float64 `json:"my,omitempty"` // about the strong axis
	Mz float64 `json:"mz,omitempty"` // about the weak axis

	// Supplied classifications bypass slenderness computation.
	FlangeCompactness aisc.Compactness `json:"flange_compactness,omitempty"`
	WebCompactness    aisc.Compactness `json:"web_compactness,omitempty"`
}

// NewBoxMember derives section properties from nominal outside dimensions
// and assembles a Chapter F7 member. The section type distinguishes
// cold-formed HSS from built-up box sections for the slender-flange
// coefficient.
func NewBoxMember(sec section.BoxSection, st SectionType, fy, e, lb, cb float64) (*RectangularMember, error) {
	props, err := sec.DeriveProperties()
	if err != nil {
		return nil, err
	}
	return &RectangularMember{
		SectionType: st,
		BendingAxis: Major,
		Fy:          fy,
		E:           e,
		Ag:          props.Ag,
		S:           props.Sx,
		Z:           props.Zx,
		Ry:          props.Ry,
		J:           props.J,
		B:           props.ClearWidth,
		Tf:          props.T,
		H:           props.ClearDepth,
		Tw:          props.T,
		Lb:          lb,
		Cb:          cb,
	}, nil
}

// Validate checks the member for missing or non-positive required
// properties. Properties needed only by specific limit states are
// validated where those limit states consume them.
func (m *RectangularMember) Validate() error {
	if m.Fy <= 0 {
		return &MissingInputError{Field: "fy"}
	}
	if m.S <= 0 {
		return &MissingInputError{Field: "s"}
	}
	if m.Z <= 0 {
		return &MissingInputError{Field: "z"}
	}
	optional := []struct {
		name  string
		value float64
	}{
		{"e", m.E}, {"ag", m.Ag}, {"ry", m.Ry}, {"j", m.J},
		{"b", m.B}, {"tf", m.Tf}, {"h", m.H}, {"tw", m.Tw},
		{"lb", m.Lb}, {"cb", m.Cb},
	}
	for _, f := range optional {
		if f.value < 0 {
			return &MissingInputError{Field: f.name}
		}
	}
	return nil
}

// isSquare reports equal flange and web flats; LTB never governs a square
// section. Unknown flats are treated as non-square and LTB applicability
// is decided by the bending axis alone.
func (m *RectangularMember) isSquare() bool {
	return m.B > 0 && m.H > 0 && m.B == m.H
}

// RoundMember is the input for a Chapter F8 check. S and Z may be
// supplied from a shape catalog; when omitted they are derived from D
// and t.
type RoundMember struct {
	SectionType SectionType `json:"section_type,omitempty"` // defaults to Round HSS

	Fy float64 `json:"fy"`
	E  float64 `json:"e,omitempty"` // defaults to 29000 ksi

	D float64 `json:"d"`
	T float64 `json:"t"`

	S float64 `json:"s,omitempty"`
	Z float64 `json:"z,omitempty"`

	// Applied moments; for round HSS the axis label is informational
	// since the properties are identical about every axis.
	My float64 `json:"my,omitempty"`
	Mz float64 `json:"mz,omitempty"`

	// Supplied classification bypasses the section classifier.
	Compactness aisc.Compactness `json:"compactness,omitempty"`
}

// Validate checks the member for missing or non-positive required
// properties.
func (m *RoundMember) Validate() error {
	if m.Fy <= 0 {
		return &MissingInputError{Field: "fy"}
	}
	if m.D <= 0 {
		return &MissingInputError{Field: "d"}
	}
	if m.T <= 0 {
		return &MissingInputError{Field: "t"}
	}
	if m.E < 0 {
		return &MissingInputError{Field: "e"}
	}
	if m.S < 0 {
		return &MissingInputError{Field: "s"}
	}
	if m.Z < 0 {
		return &MissingInputError{Field: "z"}
	}
	return nil
}

// LoadRectangularMember loads a member definition from a JSON file.
func LoadRectangularMember(path string) (*RectangularMember, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m RectangularMember
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadRoundMember loads a round member definition from a JSON file.
func LoadRoundMember(path string) (*RoundMember, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m RoundMember
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
