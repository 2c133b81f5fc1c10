package qsim

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, -pi/2
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// ParseAngle parses a rotation angle in radians. It accepts plain
// numbers ("1.5707", "3.14e-2", "-0.5") and pi expressions ("pi",
// "pi/2", "2*pi", "3pi/4", "-pi/2").
func ParseAngle(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAngle)
	}

	if val, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return val, nil
	}

	matches := piExprRegex.FindStringSubmatch(strings.ToLower(trimmed))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
	}

	coeff := 1.0
	if matches[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
		}
	}

	result := coeff * math.Pi

	if matches[3] != "" {
		denom, err := strconv.ParseFloat(matches[3], 64)
		if err != nil || denom == 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAngle, s)
		}
		result /= denom
	}

	if matches[1] == "-" {
		result = -result
	}
	return result, nil
}

// FormatAngle formats an angle in radians, using pi notation for the
// common fractions and %g otherwise.
func FormatAngle(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", val)
}
