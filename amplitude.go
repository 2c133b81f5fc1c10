package qsim

import (
	"math/cmplx"
	"strconv"
)

// Amplitude is the scalar held in every state-vector slot. Native
// complex128 carries the arithmetic (addition, multiplication,
// conjugation via cmplx); the helpers below cover the derived
// quantities and the display form the rest of the package needs.
type Amplitude = complex128

// AbsSq returns |z|^2 without the square root cmplx.Abs would take.
func AbsSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Magnitude returns |z|.
func Magnitude(z complex128) float64 {
	return cmplx.Abs(z)
}

// Phase returns the argument of z in (-pi, pi].
func Phase(z complex128) float64 {
	return cmplx.Phase(z)
}

// FormatAmplitude renders z as "a+bi" with the given number of decimal
// places. A component that rounds to zero at that precision is dropped,
// so pure-real and pure-imaginary values print without the dead term.
func FormatAmplitude(z complex128, precision int) string {
	re := strconv.FormatFloat(real(z), 'f', precision, 64)
	im := strconv.FormatFloat(imag(z), 'f', precision, 64)
	zero := strconv.FormatFloat(0, 'f', precision, 64)
	negZero := "-" + zero
	if im == zero || im == negZero {
		if re == negZero {
			return zero
		}
		return re
	}
	if re == zero || re == negZero {
		return im + "i"
	}
	if imag(z) < 0 {
		return re + im + "i"
	}
	return re + "+" + im + "i"
}
