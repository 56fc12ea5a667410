package flexure

import (
	"testing"

	"github.com/gostructural/gohss/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityCurve(t *testing.T) {
	checker := NewChecker()

	m, err := NewBoxMember(section.BoxSection{B: 6, H: 12, TNom: 0.25}, HSS, 46, 29000, 120, 1.0)
	require.NoError(t, err)

	lbs, mns, err := checker.CapacityCurve(*m, 600, 50)
	require.NoError(t, err)
	require.Len(t, lbs, 50)
	require.Len(t, mns, 50)

	assert.Equal(t, 0.0, lbs[0])
	assert.InDelta(t, 600.0, lbs[len(lbs)-1], 1e-9)

	// Mn at Lb = 0 is the plastic moment; the curve never rises
	assert.InDelta(t, 46*m.Z, mns[0], 1e-9)
	for i := 1; i < len(mns); i++ {
		assert.LessOrEqual(t, mns[i], mns[i-1])
	}
}
