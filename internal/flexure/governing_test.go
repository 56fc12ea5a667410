package flexure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectGoverningPicksMinimum(t *testing.T) {
	res := &CheckResult{
		Candidates: []Candidate{
			{LimitState: Yielding, Mn: 3000, Applicable: true},
			{LimitState: FlangeLocalBuckling, Mn: 2800, Applicable: true},
			{LimitState: WebLocalBuckling, Applicable: false},
			{LimitState: LateralTorsionalBuckling, Mn: 2500, Applicable: true},
		},
	}

	selectGoverning(res)

	assert.Equal(t, LateralTorsionalBuckling, res.GoverningLimitState)
	assert.Equal(t, 2500.0, res.Mn)
}

func TestSelectGoverningSkipsInapplicable(t *testing.T) {
	// An inapplicable candidate carries Mn = 0 but must never win
	res := &CheckResult{
		Candidates: []Candidate{
			{LimitState: Yielding, Mn: 3000, Applicable: true},
			{LimitState: FlangeLocalBuckling, Applicable: false},
			{LimitState: WebLocalBuckling, Applicable: false},
			{LimitState: LateralTorsionalBuckling, Applicable: false},
		},
	}

	selectGoverning(res)

	assert.Equal(t, Yielding, res.GoverningLimitState)
	assert.Equal(t, 3000.0, res.Mn)
}

func TestSelectGoverningTieBreaksByDeclaredOrder(t *testing.T) {
	res := &CheckResult{
		Candidates: []Candidate{
			{LimitState: Yielding, Mn: 3000, Applicable: true},
			{LimitState: FlangeLocalBuckling, Mn: 3000, Applicable: true},
			{LimitState: WebLocalBuckling, Mn: 3000, Applicable: true},
			{LimitState: LateralTorsionalBuckling, Mn: 3000, Applicable: true},
		},
	}

	selectGoverning(res)

	assert.Equal(t, Yielding, res.GoverningLimitState)
}
