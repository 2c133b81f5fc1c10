// Package qsim is an exact statevector simulator for small quantum
// circuits.
//
// A circuit is an ordered sequence of gate operations over n qubits.
// Running it replays the operations, in ascending position, into a
// fresh 2^n amplitude vector; every derived quantity (probability
// distribution, weighted samples, single-qubit Bloch coordinates) is a
// pure read-only view over the resulting state.
//
//	var c qsim.Circuit
//	c.NumQubits = 2
//	c.Add(qsim.GateH, 0, 0)
//	c.AddTwoQubit(qsim.GateCNOT, 0, 1, 1)
//
//	res, err := qsim.NewSimulator().Run(&c) // Bell state
//
// Index bits map qubit 0 to the most-significant bit, so a basis
// label such as "10" reads left to right in qubit order. Cost is
// O(2^n) per gate; the package enforces no qubit ceiling, memory does.
package qsim
