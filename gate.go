package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// GateKind identifies a supported gate. The vocabulary is closed:
// every switch over GateKind in this package enumerates all kinds, so
// a new kind is a compile-visible change rather than a silent no-op.
type GateKind int

const (
	GateH GateKind = iota
	GateX
	GateY
	GateZ
	GateS
	GateSdg
	GateT
	GateTdg
	GateRX
	GateRY
	GateRZ
	GateCNOT
	GateCZ
	GateSwap
	GateMeasure
)

func (k GateKind) String() string {
	switch k {
	case GateH:
		return "H"
	case GateX:
		return "X"
	case GateY:
		return "Y"
	case GateZ:
		return "Z"
	case GateS:
		return "S"
	case GateSdg:
		return "SDG"
	case GateT:
		return "T"
	case GateTdg:
		return "TDG"
	case GateRX:
		return "RX"
	case GateRY:
		return "RY"
	case GateRZ:
		return "RZ"
	case GateCNOT:
		return "CNOT"
	case GateCZ:
		return "CZ"
	case GateSwap:
		return "SWAP"
	case GateMeasure:
		return "MEASURE"
	}
	return fmt.Sprintf("GateKind(%d)", int(k))
}

// ParseGateKind maps a kind string from the circuit model to its
// GateKind. Names are case-insensitive; CX is accepted for CNOT.
func ParseGateKind(name string) (GateKind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "H":
		return GateH, nil
	case "X":
		return GateX, nil
	case "Y":
		return GateY, nil
	case "Z":
		return GateZ, nil
	case "S":
		return GateS, nil
	case "SDG":
		return GateSdg, nil
	case "T":
		return GateT, nil
	case "TDG":
		return GateTdg, nil
	case "RX":
		return GateRX, nil
	case "RY":
		return GateRY, nil
	case "RZ":
		return GateRZ, nil
	case "CNOT", "CX":
		return GateCNOT, nil
	case "CZ":
		return GateCZ, nil
	case "SWAP":
		return GateSwap, nil
	case "MEASURE":
		return GateMeasure, nil
	}
	return 0, &ErrUnknownGateName{Name: name}
}

// IsRotation reports whether the kind takes a theta parameter.
func (k GateKind) IsRotation() bool {
	switch k {
	case GateRX, GateRY, GateRZ:
		return true
	}
	return false
}

// IsTwoQubit reports whether the kind requires a target qubit.
func (k GateKind) IsTwoQubit() bool {
	switch k {
	case GateCNOT, GateCZ, GateSwap:
		return true
	}
	return false
}

// IsSingleQubit reports whether the kind applies a 2x2 unitary to one
// qubit.
func (k GateKind) IsSingleQubit() bool {
	switch k {
	case GateH, GateX, GateY, GateZ, GateS, GateSdg, GateT, GateTdg,
		GateRX, GateRY, GateRZ:
		return true
	}
	return false
}

// Matrix2 is a dense 2x2 complex matrix in row-major order. It serves
// both as a single-qubit unitary and as a reduced density matrix.
type Matrix2 [2][2]complex128

var (
	matH = Matrix2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
	matX   = Matrix2{{0, 1}, {1, 0}}
	matY   = Matrix2{{0, -1i}, {1i, 0}}
	matZ   = Matrix2{{1, 0}, {0, -1}}
	matS   = Matrix2{{1, 0}, {0, 1i}}
	matSdg = Matrix2{{1, 0}, {0, -1i}}
	matT   = Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
	matTdg = Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, -math.Pi/4))}}
)

func rxMatrix(theta float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return Matrix2{{c, js}, {js, c}}
}

func ryMatrix(theta float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix2{{c, -s}, {s, c}}
}

// rzMatrix carries the symmetric phase convention: diag(e^{-i t/2}, e^{i t/2}).
func rzMatrix(theta float64) Matrix2 {
	phase := cmplx.Exp(complex(0, theta/2))
	return Matrix2{{cmplx.Conj(phase), 0}, {0, phase}}
}

// singleQubitMatrix returns the 2x2 unitary for a single-qubit kind.
// Structural kinds (CNOT/CZ/SWAP) and the measurement marker have no
// dense matrix and are handled by the engine directly.
func singleQubitMatrix(kind GateKind, theta float64) (Matrix2, error) {
	switch kind {
	case GateH:
		return matH, nil
	case GateX:
		return matX, nil
	case GateY:
		return matY, nil
	case GateZ:
		return matZ, nil
	case GateS:
		return matS, nil
	case GateSdg:
		return matSdg, nil
	case GateT:
		return matT, nil
	case GateTdg:
		return matTdg, nil
	case GateRX:
		return rxMatrix(theta), nil
	case GateRY:
		return ryMatrix(theta), nil
	case GateRZ:
		return rzMatrix(theta), nil
	}
	return Matrix2{}, &ErrUnknownGate{Kind: kind}
}
