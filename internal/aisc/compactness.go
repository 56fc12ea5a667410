package aisc

import (
	"fmt"
	"strings"
)

// Compactness classifies a cross-section element's resistance to local
// buckling per Section B4.1. The zero value means the classification has
// not been determined (or supplied) yet.
type Compactness int

const (
	CompactnessUnset Compactness = iota
	Compact
	Noncompact
	Slender
)

func (c Compactness) String() string {
	switch c {
	case Compact:
		return "Compact"
	case Noncompact:
		return "Noncompact"
	case Slender:
		return "Slender"
	default:
		return "Unset"
	}
}

// MarshalText implements encoding.TextMarshaler so compactness labels
// round-trip through JSON member files as strings.
func (c Compactness) MarshalText() ([]byte, error) {
	if c == CompactnessUnset {
		return []byte(""), nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses a compactness label case-insensitively. Historic
// inputs used inconsistent capitalization ("noncompact", "NONCOMPACT");
// all spellings map to the same closed set.
func (c *Compactness) UnmarshalText(text []byte) error {
	parsed, err := ParseCompactness(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCompactness converts a label to a Compactness value.
func ParseCompactness(s string) (Compactness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CompactnessUnset, nil
	case "compact":
		return Compact, nil
	case "noncompact", "non-compact":
		return Noncompact, nil
	case "slender":
		return Slender, nil
	}
	return CompactnessUnset, fmt.Errorf("unknown compactness classification: %q", s)
}
