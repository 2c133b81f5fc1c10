package qsim

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
)

// Result is the output of one full circuit replay.
type Result struct {
	Amplitudes    []complex128
	Probabilities []float64
}

// Simulator replays circuits into fresh state vectors. A Simulator is
// not safe for concurrent use; concurrent runs need separate instances.
type Simulator struct {
	logger *log.Logger
	rng    *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger enables per-gate debug tracing during Run.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithRand sets the randomness source used by Sample. The default is
// the shared global source.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) { s.rng = r }
}

// NewSimulator returns a Simulator with the given options applied.
func NewSimulator(opts ...Option) *Simulator {
	sim := &Simulator{}
	for _, opt := range opts {
		opt(sim)
	}
	return sim
}

// Run replays the circuit from |0...0>, applying operations in
// ascending Position, and returns the final amplitudes and their
// probability distribution. The sort is stable, so two operations
// sharing a position are applied in supply order; same-position
// operations touching the same qubit are caller error and are not
// detected here.
func (sim *Simulator) Run(c *Circuit) (*Result, error) {
	state, err := sim.run(c)
	if err != nil {
		return nil, err
	}
	return &Result{
		Amplitudes:    state.Amplitudes,
		Probabilities: state.Probabilities(),
	}, nil
}

// Sample replays the circuit and draws shots outcomes from its final
// state. The state is rebuilt per call, so repeated sampling of the
// same circuit is independent and reproducible under a seeded source.
func (sim *Simulator) Sample(c *Circuit, shots int) (map[string]int, error) {
	state, err := sim.run(c)
	if err != nil {
		return nil, err
	}
	return state.SampleCounts(shots, sim.rng)
}

func (sim *Simulator) run(c *Circuit) (*StateVector, error) {
	state, err := NewStateVector(c.NumQubits)
	if err != nil {
		return nil, err
	}
	ops := slices.Clone(c.Ops)
	slices.SortStableFunc(ops, func(a, b Operation) int {
		return cmp.Compare(a.Position, b.Position)
	})
	for _, op := range ops {
		if sim.logger != nil {
			sim.logger.Debug("apply gate",
				"kind", op.Kind.String(),
				"qubit", op.Qubit,
				"target", op.Target,
				"position", op.Position,
			)
		}
		if err := state.ApplyOperation(op); err != nil {
			return nil, fmt.Errorf("apply %s at position %d: %w", op.Kind, op.Position, err)
		}
	}
	return state, nil
}
