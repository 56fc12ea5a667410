package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxDeriveProperties(t *testing.T) {
	// HSS10x10x1/2
	sec := BoxSection{B: 10, H: 10, TNom: 0.5}

	props, err := sec.DeriveProperties()
	require.NoError(t, err)

	assert.InDelta(t, 0.465, props.T, 1e-12)
	assert.InDelta(t, 8.605, props.ClearWidth, 1e-12)
	assert.InDelta(t, 8.605, props.ClearDepth, 1e-12)

	assert.InDelta(t, 17.7351, props.Ag, 1e-4)
	assert.InDelta(t, 269.374, props.Ix, 1e-3)
	assert.InDelta(t, 53.875, props.Sx, 1e-3)
	assert.InDelta(t, 63.464, props.Zx, 1e-3)
	assert.InDelta(t, 3.897, props.Ry, 1e-3)
	assert.InDelta(t, 403.1, props.J, 0.5)

	// Square sections are symmetric
	assert.InDelta(t, props.Ix, props.Iy, 1e-9)

	assert.True(t, sec.IsSquare())
}

func TestBoxPropertiesPositive(t *testing.T) {
	sections := []BoxSection{
		{B: 4, H: 4, TNom: 0.125},
		{B: 6, H: 12, TNom: 0.25},
		{B: 20, H: 12, TNom: 0.625},
	}

	for _, sec := range sections {
		props, err := sec.DeriveProperties()
		require.NoError(t, err)

		assert.Greater(t, props.Ag, 0.0)
		assert.Greater(t, props.Ix, 0.0)
		assert.Greater(t, props.Iy, 0.0)
		assert.Greater(t, props.Sx, 0.0)
		assert.Greater(t, props.Zx, 0.0)
		assert.Greater(t, props.Ry, 0.0)
		assert.Greater(t, props.J, 0.0)
	}
}

func TestBoxDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name string
		sec  BoxSection
	}{
		{"zero thickness", BoxSection{B: 10, H: 10, TNom: 0}},
		{"negative thickness", BoxSection{B: 10, H: 10, TNom: -0.5}},
		{"width consumed by walls", BoxSection{B: 1, H: 10, TNom: 0.5}},
		{"depth consumed by walls", BoxSection{B: 10, H: 1, TNom: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := tt.sec.DeriveProperties()
			require.Error(t, err)
			assert.Nil(t, props)

			var geomErr *InvalidGeometryError
			assert.ErrorAs(t, err, &geomErr)
		})
	}
}

func TestRoundDeriveProperties(t *testing.T) {
	// HSS12x0.25 (nominal dimensions used directly)
	sec := RoundSection{D: 12, T: 0.25}

	props, err := sec.DeriveProperties()
	require.NoError(t, err)

	assert.InDelta(t, 9.228, props.A, 1e-3)
	assert.InDelta(t, 159.34, props.I, 0.01)
	assert.InDelta(t, 26.556, props.S, 1e-3)
	assert.InDelta(t, 34.521, props.Z, 1e-3)
}

func TestRoundDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name string
		sec  RoundSection
	}{
		{"zero thickness", RoundSection{D: 12, T: 0}},
		{"wall thicker than radius", RoundSection{D: 1, T: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := tt.sec.DeriveProperties()
			require.Error(t, err)
			assert.Nil(t, props)

			var geomErr *InvalidGeometryError
			assert.ErrorAs(t, err, &geomErr)
		})
	}
}
