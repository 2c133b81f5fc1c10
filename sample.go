package qsim

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Probabilities returns |amplitude|^2 per basis index. Pure query; the
// state is not touched and repeated calls yield identical results.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		probs[i] = AbsSq(amp)
	}
	return probs
}

// Norm returns the total probability mass. Every supported operation is
// unitary or permutation+phase, so this stays at 1 up to floating
// tolerance.
func (s *StateVector) Norm() float64 {
	return floats.Sum(s.Probabilities())
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Zero float64
	One  float64
}

// MarginalProbabilities returns each qubit's marginal P(0)/P(1),
// accumulated in one pass over the index space.
func (s *StateVector) MarginalProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, amp := range s.Amplitudes {
		p := AbsSq(amp)
		for q := 0; q < s.NumQubits; q++ {
			if i&s.mask(q) != 0 {
				probs[q].One += p
			} else {
				probs[q].Zero += p
			}
		}
	}
	return probs
}

// BasisLabel returns the fixed-width binary label of a basis index.
// Qubit 0 is the most-significant bit, so the label reads left to right
// in qubit order.
func (s *StateVector) BasisLabel(i int) string {
	return fmt.Sprintf("%0*b", s.NumQubits, i)
}

// SampleOne draws a single outcome by walking the distribution until
// the accumulated mass covers r. If rounding leaves the total mass
// slightly under 1 and r lands past it, the last index is returned.
func (s *StateVector) SampleOne(rng *rand.Rand) string {
	r := uniform(rng)
	cum := 0.0
	for i, amp := range s.Amplitudes {
		cum += AbsSq(amp)
		if r < cum {
			return s.BasisLabel(i)
		}
	}
	return s.BasisLabel(len(s.Amplitudes) - 1)
}

// SampleCounts draws shots independent outcomes and returns a count per
// basis label. Sampling is read-only: no collapse is carried between
// shots and the state is left untouched. The cumulative distribution is
// materialized once and binary-searched per shot.
func (s *StateVector) SampleCounts(shots int, rng *rand.Rand) (map[string]int, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("sample counts: %w", ErrInvalidShots)
	}
	probs := s.Probabilities()
	cum := make([]float64, len(probs))
	floats.CumSum(cum, probs)
	counts := make(map[string]int)
	for range shots {
		i := sort.SearchFloat64s(cum, uniform(rng))
		if i >= len(cum) {
			i = len(cum) - 1
		}
		counts[s.BasisLabel(i)]++
	}
	return counts, nil
}

func uniform(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}
