package qsim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsSq(t *testing.T) {
	assert.InDelta(t, 0.0, AbsSq(0), 1e-15)
	assert.InDelta(t, 1.0, AbsSq(1i), 1e-15)
	assert.InDelta(t, 2.0, AbsSq(complex(1, -1)), 1e-15)
	assert.InDelta(t, 0.5, AbsSq(complex(invSqrt2, 0)), 1e-15)
}

func TestMagnitudeAndPhase(t *testing.T) {
	z := complex(0, 1)
	assert.InDelta(t, 1.0, Magnitude(z), 1e-15)
	assert.InDelta(t, math.Pi/2, Phase(z), 1e-15)
	assert.InDelta(t, math.Pi, Phase(complex(-1, 0)), 1e-15)
}

func TestFormatAmplitude(t *testing.T) {
	tests := []struct {
		z         complex128
		precision int
		want      string
	}{
		{complex(1, 0), 2, "1.00"},
		{complex(0, 1), 2, "1.00i"},
		{complex(0, -1), 2, "-1.00i"},
		{complex(0.5, 0.5), 2, "0.50+0.50i"},
		{complex(0.5, -0.5), 2, "0.50-0.50i"},
		{complex(0, 0), 3, "0.000"},
		{complex(invSqrt2, 0), 4, "0.7071"},
		{complex(-invSqrt2, invSqrt2), 4, "-0.7071+0.7071i"},
		// Components below the precision round away entirely.
		{complex(1, 1e-9), 3, "1.000"},
		{complex(-1e-9, 0.25), 3, "0.250i"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmplitude(tt.z, tt.precision), "%v", tt.z)
	}
}
