package aisc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlendernessLimits(t *testing.T) {
	fy, e := 46.0, 29000.0
	sqrtEFy := math.Sqrt(e / fy)

	assert.InDelta(t, 1.12*sqrtEFy, FlangeLambdaP(e, fy), 1e-12)
	assert.InDelta(t, 1.40*sqrtEFy, FlangeLambdaR(e, fy), 1e-12)
	assert.InDelta(t, 2.42*sqrtEFy, WebLambdaP(e, fy), 1e-12)
	assert.InDelta(t, 5.70*sqrtEFy, WebLambdaR(e, fy), 1e-12)

	assert.InDelta(t, 0.07*e/fy, RoundLambdaP(e, fy), 1e-12)
	assert.InDelta(t, 0.31*e/fy, RoundLambdaR(e, fy), 1e-12)
	assert.InDelta(t, 0.45*e/fy, RoundFlexureLimit(e, fy), 1e-12)
}

func TestClassify(t *testing.T) {
	lambdaP, lambdaR := 28.12, 35.15

	tests := []struct {
		name   string
		lambda float64
		want   Compactness
	}{
		{"well below compact limit", 10, Compact},
		{"at compact limit", lambdaP, Compact},
		{"between limits", 30, Noncompact},
		{"at noncompact limit", lambdaR, Noncompact},
		{"above noncompact limit", 40, Slender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.lambda, lambdaP, lambdaR))
		})
	}
}

func TestParseCompactness(t *testing.T) {
	tests := []struct {
		in   string
		want Compactness
	}{
		{"compact", Compact},
		{"Compact", Compact},
		{"NONCOMPACT", Noncompact},
		{"non-compact", Noncompact},
		{" Slender ", Slender},
		{"", CompactnessUnset},
	}

	for _, tt := range tests {
		got, err := ParseCompactness(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	_, err := ParseCompactness("semi-compact")
	require.Error(t, err)
}

func TestCompactnessText(t *testing.T) {
	out, err := Noncompact.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Noncompact", string(out))

	var c Compactness
	require.NoError(t, c.UnmarshalText([]byte("slender")))
	assert.Equal(t, Slender, c)
}
