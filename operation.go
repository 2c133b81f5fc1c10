package qsim

// Operation is one gate application supplied by the circuit model.
// Position is a scheduling key, not a time unit: operations are applied
// in ascending Position, ties in supply order.
type Operation struct {
	Kind     GateKind
	Qubit    int
	Target   int       // second qubit for CNOT/CZ/SWAP, -1 otherwise
	Params   []float64 // theta in radians for RX/RY/RZ
	Position int
}

// Theta returns the rotation angle carried by the operation.
func (op Operation) Theta() (float64, error) {
	if len(op.Params) == 0 {
		return 0, &ErrMissingParam{Kind: op.Kind, Param: "theta"}
	}
	return op.Params[0], nil
}

// Circuit is an ordered collection of operations over a fixed number of
// qubits. The zero value is an empty zero-qubit circuit.
type Circuit struct {
	NumQubits int
	Ops       []Operation
}

// Add appends a plain single-qubit gate or a measurement marker.
func (c *Circuit) Add(kind GateKind, qubit, position int) {
	c.Ops = append(c.Ops, Operation{
		Kind:     kind,
		Qubit:    qubit,
		Target:   -1,
		Position: position,
	})
}

// AddRotation appends a rotation gate with its angle in radians.
func (c *Circuit) AddRotation(kind GateKind, qubit, position int, theta float64) {
	c.Ops = append(c.Ops, Operation{
		Kind:     kind,
		Qubit:    qubit,
		Target:   -1,
		Params:   []float64{theta},
		Position: position,
	})
}

// AddTwoQubit appends a CNOT, CZ or SWAP. For the controlled gates
// qubit is the control; for SWAP the order of the pair is irrelevant.
func (c *Circuit) AddTwoQubit(kind GateKind, qubit, target, position int) {
	c.Ops = append(c.Ops, Operation{
		Kind:     kind,
		Qubit:    qubit,
		Target:   target,
		Position: position,
	})
}
