package qsim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQubitCount is returned when a state is created or reset
	// with a negative qubit count.
	ErrInvalidQubitCount = errors.New("qubit count must be non-negative")

	// ErrInvalidShots is returned when a batched sample is requested
	// with a non-positive shot count.
	ErrInvalidShots = errors.New("shot count must be positive")

	// ErrInvalidAngle is returned when an angle expression cannot be
	// parsed.
	ErrInvalidAngle = errors.New("invalid angle expression")
)

// ErrQubitOutOfRange indicates a qubit index outside the state's
// register. The index is rejected rather than clamped: clamping would
// silently change the circuit being simulated.
type ErrQubitOutOfRange struct {
	Qubit     int
	NumQubits int
}

func (e *ErrQubitOutOfRange) Error() string {
	return fmt.Sprintf("qubit %d out of range for %d-qubit state", e.Qubit, e.NumQubits)
}

// ErrUnknownGate indicates a gate kind outside the closed vocabulary.
// The engine refuses to guess a matrix for it.
type ErrUnknownGate struct {
	Kind GateKind
}

func (e *ErrUnknownGate) Error() string {
	return fmt.Sprintf("unknown gate kind %s", e.Kind)
}

// ErrUnknownGateName indicates a kind string that does not name any
// supported gate.
type ErrUnknownGateName struct {
	Name string
}

func (e *ErrUnknownGateName) Error() string {
	return fmt.Sprintf("unknown gate name %q", e.Name)
}

// ErrMissingParam indicates an operation lacking a parameter its kind
// requires (theta for rotations, targetQubit for two-qubit gates).
type ErrMissingParam struct {
	Kind  GateKind
	Param string
}

func (e *ErrMissingParam) Error() string {
	return fmt.Sprintf("gate %s requires parameter %s", e.Kind, e.Param)
}
