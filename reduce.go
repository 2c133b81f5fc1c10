package qsim

import "math/cmplx"

// BlochVector is the reduced single-qubit state in Bloch coordinates.
// Purity is 1 for a qubit unentangled with the rest of the register and
// falls toward 0.5 as the qubit approaches maximally mixed; the Bloch
// vector's magnitude shrinks below 1 in step.
type BlochVector struct {
	X, Y, Z float64
	Purity  float64
}

// DensityMatrix traces out every qubit except qubit and returns the 2x2
// reduced density matrix. For each assignment of the other qubits' bits
// it accumulates the outer product of the pair of amplitudes selected
// by the target bit; this walks 2^(n-1) pairs instead of the naive
// 4^n index pairs and produces identical entries.
func DensityMatrix(s *StateVector, qubit int) (Matrix2, error) {
	if err := s.checkQubit(qubit); err != nil {
		return Matrix2{}, err
	}
	bit := s.mask(qubit)
	low := bit - 1
	var rho Matrix2
	half := len(s.Amplitudes) >> 1
	for k := 0; k < half; k++ {
		// Expand k into a full index with a gap at the target bit.
		i0 := ((k &^ low) << 1) | (k & low)
		a0 := s.Amplitudes[i0]
		a1 := s.Amplitudes[i0|bit]
		rho[0][0] += a0 * cmplx.Conj(a0)
		rho[0][1] += a0 * cmplx.Conj(a1)
		rho[1][0] += a1 * cmplx.Conj(a0)
		rho[1][1] += a1 * cmplx.Conj(a1)
	}
	return rho, nil
}

// ReduceQubit computes one qubit's Bloch coordinates and purity via
// partial trace. The diagonal of rho holds real probabilities, so z is
// formed from the real parts directly.
func ReduceQubit(s *StateVector, qubit int) (BlochVector, error) {
	rho, err := DensityMatrix(s, qubit)
	if err != nil {
		return BlochVector{}, err
	}
	p0 := real(rho[0][0])
	p1 := real(rho[1][1])
	reOff := real(rho[0][1])
	imOff := imag(rho[0][1])
	return BlochVector{
		X:      2 * reOff,
		Y:      2 * imOff,
		Z:      p0 - p1,
		Purity: p0*p0 + p1*p1 + 2*(reOff*reOff+imOff*imOff),
	}, nil
}
