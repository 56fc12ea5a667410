package flexure

import "fmt"

// UnsupportedSectionTypeError reports a check invoked with a section type
// outside its applicable chapter, e.g. Chapter F8 logic given a
// rectangular section.
type UnsupportedSectionTypeError struct {
	Chapter     string
	SectionType SectionType
}

func (e *UnsupportedSectionTypeError) Error() string {
	return fmt.Sprintf("chapter %s does not apply to section type %s", e.Chapter, e.SectionType)
}

// ApplicabilityError reports a code-defined precondition violation, such
// as a round HSS whose D/t ratio exceeds the Chapter F8 limit.
type ApplicabilityError struct {
	Chapter string
	Reason  string
}

func (e *ApplicabilityError) Error() string {
	return fmt.Sprintf("chapter %s not applicable: %s", e.Chapter, e.Reason)
}

// UnsupportedConfigurationError reports a configuration the design code
// defines no strength formula for. The check surfaces it as an error
// rather than returning a sentinel value that could be mistaken for a
// valid strength.
type UnsupportedConfigurationError struct {
	Reason string
}

func (e *UnsupportedConfigurationError) Error() string {
	return "unsupported configuration: " + e.Reason
}

// MissingInputError reports a required member property that was absent or
// non-positive on the direct-properties entry point.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing or non-positive input: %s", e.Field)
}
