package qsim

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func bellCircuit() *Circuit {
	c := &Circuit{NumQubits: 2}
	c.Add(GateH, 0, 0)
	c.AddTwoQubit(GateCNOT, 0, 1, 1)
	return c
}

func TestRunBellCircuit(t *testing.T) {
	res, err := NewSimulator().Run(bellCircuit())
	require.NoError(t, err)
	require.Len(t, res.Amplitudes, 4)
	require.Len(t, res.Probabilities, 4)

	assert.InDelta(t, invSqrt2, real(res.Amplitudes[0]), 1e-6)
	assert.InDelta(t, invSqrt2, real(res.Amplitudes[3]), 1e-6)
	assert.InDelta(t, 0.5, res.Probabilities[0], 1e-6)
	assert.InDelta(t, 0.0, res.Probabilities[1], 1e-12)
	assert.InDelta(t, 0.0, res.Probabilities[2], 1e-12)
	assert.InDelta(t, 0.5, res.Probabilities[3], 1e-6)
	assert.InDelta(t, 1.0, floats.Sum(res.Probabilities), 1e-6)
}

func TestRunAppliesOperationsByPosition(t *testing.T) {
	// Same gates, supplied in reverse position order.
	shuffled := &Circuit{NumQubits: 2}
	shuffled.AddTwoQubit(GateCNOT, 0, 1, 1)
	shuffled.Add(GateH, 0, 0)

	ordered, err := NewSimulator().Run(bellCircuit())
	require.NoError(t, err)
	got, err := NewSimulator().Run(shuffled)
	require.NoError(t, err)

	assert.Equal(t, ordered.Amplitudes, got.Amplitudes)
}

func TestRunKeepsSupplyOrderOnPositionTies(t *testing.T) {
	// Two independent single-qubit gates at the same position must
	// compose identically whichever way the caller ordered them.
	a := &Circuit{NumQubits: 2}
	a.Add(GateH, 0, 0)
	a.Add(GateX, 1, 0)

	b := &Circuit{NumQubits: 2}
	b.Add(GateX, 1, 0)
	b.Add(GateH, 0, 0)

	resA, err := NewSimulator().Run(a)
	require.NoError(t, err)
	resB, err := NewSimulator().Run(b)
	require.NoError(t, err)
	assert.Equal(t, resA.Amplitudes, resB.Amplitudes)
}

func TestRunDoesNotMutateCircuit(t *testing.T) {
	c := &Circuit{NumQubits: 1}
	c.Add(GateX, 0, 5)
	c.Add(GateH, 0, 2)
	_, err := NewSimulator().Run(c)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Ops[0].Position)
	assert.Equal(t, 2, c.Ops[1].Position)
}

func TestRunRejectsInvalidOperation(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.Add(GateH, 0, 0)
	c.Add(GateX, 7, 1)
	res, err := NewSimulator().Run(c)
	require.Error(t, err)
	assert.Nil(t, res)
	var oor *ErrQubitOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 7, oor.Qubit)
	assert.Contains(t, err.Error(), "position 1")
}

func TestRunMeasurementMarkersIgnored(t *testing.T) {
	c := bellCircuit()
	c.Add(GateMeasure, 0, 2)
	c.Add(GateMeasure, 1, 3)
	withMeasure, err := NewSimulator().Run(c)
	require.NoError(t, err)
	plain, err := NewSimulator().Run(bellCircuit())
	require.NoError(t, err)
	assert.Equal(t, plain.Amplitudes, withMeasure.Amplitudes)
}

func TestRunEmptyCircuit(t *testing.T) {
	res, err := NewSimulator().Run(&Circuit{NumQubits: 0})
	require.NoError(t, err)
	require.Len(t, res.Amplitudes, 1)
	assert.Equal(t, complex128(1), res.Amplitudes[0])
}

func TestRunIsReproducible(t *testing.T) {
	c := &Circuit{NumQubits: 3}
	c.Add(GateH, 0, 0)
	c.AddRotation(GateRY, 1, 1, math.Pi/5)
	c.AddTwoQubit(GateCZ, 0, 2, 2)
	c.AddRotation(GateRZ, 2, 3, -0.8)

	first, err := NewSimulator().Run(c)
	require.NoError(t, err)
	second, err := NewSimulator().Run(c)
	require.NoError(t, err)
	assert.Equal(t, first.Amplitudes, second.Amplitudes)
	assert.Equal(t, first.Probabilities, second.Probabilities)
}

func TestRunWithLoggerTracesGates(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := NewSimulator(WithLogger(logger)).Run(bellCircuit())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "apply gate")
	assert.Contains(t, out, "kind=H")
	assert.Contains(t, out, "kind=CNOT")
}

func TestSimulatorSample(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 23))
	sim := NewSimulator(WithRand(rng))
	counts, err := sim.Sample(bellCircuit(), 2000)
	require.NoError(t, err)

	total := 0
	for label, n := range counts {
		require.True(t, label == "00" || label == "11", "unexpected outcome %q", label)
		total += n
	}
	assert.Equal(t, 2000, total)
	assert.Greater(t, counts["00"], 0)
	assert.Greater(t, counts["11"], 0)

	_, err = sim.Sample(bellCircuit(), 0)
	require.ErrorIs(t, err, ErrInvalidShots)
}

func TestProbabilitiesIdempotent(t *testing.T) {
	s := bellState(t)
	first := s.Probabilities()
	second := s.Probabilities()
	assert.Equal(t, first, second)
}
