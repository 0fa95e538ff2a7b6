package noise

import (
	"errors"
	"fmt"

	"github.com/vtu23158/QML-LAB/circuit"
)

// Default depolarizing probabilities for the demonstration experiments.
const (
	DefaultP1 = 0.01 // single-qubit gate error probability
	DefaultP2 = 0.03 // two-qubit gate error probability
)

// ErrInvalidProbability indicates a depolarizing probability outside [0, 1].
var ErrInvalidProbability = errors.New("noise: depolarizing probability must be within [0, 1]")

// Model is a set of depolarizing channels keyed by gate arity.
//
// The zero Model is valid and noise-free. Models are immutable after New
// and may be shared, by reference, across concurrent executions.
type Model struct {
	p1 float64
	p2 float64
}

// New builds a Model applying depolarizing probability p1 to every
// single-qubit gate kind and p2 to every two-qubit gate kind
// (the sets circuit.SingleQubitKinds and circuit.TwoQubitKinds).
//
// Returns ErrInvalidProbability if either probability lies outside [0, 1].
func New(p1, p2 float64) (*Model, error) {
	if p1 < 0 || p1 > 1 {
		return nil, fmt.Errorf("%w: p1 = %g", ErrInvalidProbability, p1)
	}
	if p2 < 0 || p2 > 1 {
		return nil, fmt.Errorf("%w: p2 = %g", ErrInvalidProbability, p2)
	}
	return &Model{p1: p1, p2: p2}, nil
}

// Default returns the demonstration model: p1 = 0.01, p2 = 0.03.
func Default() *Model {
	m, _ := New(DefaultP1, DefaultP2) // constants are in range
	return m
}

// P1 returns the single-qubit depolarizing probability.
func (m *Model) P1() float64 { return m.p1 }

// P2 returns the two-qubit depolarizing probability.
func (m *Model) P2() float64 { return m.p2 }

// ErrorProbability returns the depolarizing probability the model assigns
// to the given gate: P1 for single-qubit unitaries, P2 for two-qubit
// unitaries, and 0 for measurements and barriers (which carry no channel).
//
// A nil Model assigns 0 to everything, so a noise-free execution needs no
// special casing at the call site.
func (m *Model) ErrorProbability(g circuit.Gate) float64 {
	if m == nil || !g.Kind.IsUnitary() {
		return 0
	}
	switch g.Kind.Arity() {
	case 1:
		return m.p1
	case 2:
		return m.p2
	default:
		return 0
	}
}
