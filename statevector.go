package qsim

import "fmt"

// StateVector holds the exact amplitudes of an n-qubit register.
//
// Index bits map big-endian: qubit 0 is the most-significant bit, so an
// index's fixed-width binary form reads as the qubit string q0 q1 ... .
// The vector is owned by whoever constructed it; nothing in this
// package shares one between callers.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns the |0...0> state on numQubits qubits.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits < 0 {
		return nil, fmt.Errorf("new state vector: %w", ErrInvalidQubitCount)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// Reset reinitializes the state to |0...0> on numQubits qubits,
// discarding the previous amplitudes wholesale.
func (s *StateVector) Reset(numQubits int) error {
	if numQubits < 0 {
		return fmt.Errorf("reset: %w", ErrInvalidQubitCount)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	s.Amplitudes = amps
	s.NumQubits = numQubits
	return nil
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// mask returns the index bit for a qubit under the MSB-first mapping.
func (s *StateVector) mask(qubit int) int {
	return 1 << (s.NumQubits - 1 - qubit)
}

func (s *StateVector) checkQubit(qubit int) error {
	if qubit < 0 || qubit >= s.NumQubits {
		return &ErrQubitOutOfRange{Qubit: qubit, NumQubits: s.NumQubits}
	}
	return nil
}

// ApplyMatrix applies a 2x2 unitary to one qubit. Every matrix gate
// goes through this single path; only the matrix differs. The full
// index space is walked once, scattering into a fresh slice so no
// amplitude is read after its slot has been overwritten.
func (s *StateVector) ApplyMatrix(m Matrix2, qubit int) error {
	if err := s.checkQubit(qubit); err != nil {
		return err
	}
	bit := s.mask(qubit)
	next := make([]complex128, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		b := 0
		if i&bit != 0 {
			b = 1
		}
		i0 := i &^ bit
		next[i0] += m[0][b] * amp
		next[i0|bit] += m[1][b] * amp
	}
	s.Amplitudes = next
	return nil
}

// ApplyCNOT swaps, wherever the control bit is set, the two amplitudes
// that differ only in the target bit. Permutation only, in place.
func (s *StateVector) ApplyCNOT(control, target int) error {
	if err := s.checkQubit(control); err != nil {
		return err
	}
	if err := s.checkQubit(target); err != nil {
		return err
	}
	cBit, tBit := s.mask(control), s.mask(target)
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return nil
}

// ApplyCZ negates every amplitude whose control and target bits are
// both set. Phase only, in place.
func (s *StateVector) ApplyCZ(control, target int) error {
	if err := s.checkQubit(control); err != nil {
		return err
	}
	if err := s.checkQubit(target); err != nil {
		return err
	}
	cBit, tBit := s.mask(control), s.mask(target)
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
	return nil
}

// ApplySwap relocates every amplitude to the index with the two qubits'
// bits exchanged. Only indices where the bits differ move.
func (s *StateVector) ApplySwap(a, b int) error {
	if err := s.checkQubit(a); err != nil {
		return err
	}
	if err := s.checkQubit(b); err != nil {
		return err
	}
	aBit, bBit := s.mask(a), s.mask(b)
	for i := range s.Amplitudes {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return nil
}

// ApplyOperation validates op and dispatches it to the matching
// primitive. Validation completes before any mutation, so the state is
// unchanged when an error is returned. Measurement markers validate
// their qubit and are otherwise ignored: the engine never collapses
// state, all randomness lives in sampling.
func (s *StateVector) ApplyOperation(op Operation) error {
	switch op.Kind {
	case GateH, GateX, GateY, GateZ, GateS, GateSdg, GateT, GateTdg:
		m, err := singleQubitMatrix(op.Kind, 0)
		if err != nil {
			return err
		}
		return s.ApplyMatrix(m, op.Qubit)
	case GateRX, GateRY, GateRZ:
		theta, err := op.Theta()
		if err != nil {
			return err
		}
		m, err := singleQubitMatrix(op.Kind, theta)
		if err != nil {
			return err
		}
		return s.ApplyMatrix(m, op.Qubit)
	case GateCNOT:
		if op.Target < 0 {
			return &ErrMissingParam{Kind: op.Kind, Param: "targetQubit"}
		}
		return s.ApplyCNOT(op.Qubit, op.Target)
	case GateCZ:
		if op.Target < 0 {
			return &ErrMissingParam{Kind: op.Kind, Param: "targetQubit"}
		}
		return s.ApplyCZ(op.Qubit, op.Target)
	case GateSwap:
		if op.Target < 0 {
			return &ErrMissingParam{Kind: op.Kind, Param: "targetQubit"}
		}
		return s.ApplySwap(op.Qubit, op.Target)
	case GateMeasure:
		return s.checkQubit(op.Qubit)
	}
	return &ErrUnknownGate{Kind: op.Kind}
}
