package noise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtu23158/QML-LAB/circuit"
	"github.com/vtu23158/QML-LAB/noise"
)

// TestNewValidatesProbabilities rejects probabilities outside [0, 1] at
// construction time.
func TestNewValidatesProbabilities(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 float64
		ok     bool
	}{
		{"defaults", 0.01, 0.03, true},
		{"zero", 0, 0, true},
		{"one", 1, 1, true},
		{"negative p1", -0.1, 0.03, false},
		{"p1 above one", 1.1, 0.03, false},
		{"negative p2", 0.01, -0.5, false},
		{"p2 above one", 0.01, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := noise.New(tc.p1, tc.p2)
			if tc.ok {
				require.NoError(t, err)
				require.InDelta(t, tc.p1, m.P1(), 1e-15)
				require.InDelta(t, tc.p2, m.P2(), 1e-15)
				return
			}
			require.ErrorIs(t, err, noise.ErrInvalidProbability)
		})
	}
}

// TestErrorProbabilityByArity verifies the arity-keyed lookup, including
// the zero channel on non-unitary operations.
func TestErrorProbabilityByArity(t *testing.T) {
	m, err := noise.New(0.01, 0.03)
	require.NoError(t, err)

	single := circuit.Gate{Kind: circuit.KindH, Qubits: []int{0}, Clbit: -1}
	require.InDelta(t, 0.01, m.ErrorProbability(single), 1e-15)

	rot := circuit.Gate{Kind: circuit.KindRX, Qubits: []int{3}, Theta: 0.5, Clbit: -1}
	require.InDelta(t, 0.01, m.ErrorProbability(rot), 1e-15)

	double := circuit.Gate{Kind: circuit.KindCX, Qubits: []int{0, 1}, Clbit: -1}
	require.InDelta(t, 0.03, m.ErrorProbability(double), 1e-15)

	measure := circuit.Gate{Kind: circuit.KindMeasure, Qubits: []int{0}, Clbit: 0}
	require.Zero(t, m.ErrorProbability(measure))

	barrier := circuit.Gate{Kind: circuit.KindBarrier, Clbit: -1}
	require.Zero(t, m.ErrorProbability(barrier))
}

// TestNilModelIsNoiseFree verifies the nil-receiver convenience.
func TestNilModelIsNoiseFree(t *testing.T) {
	var m *noise.Model
	g := circuit.Gate{Kind: circuit.KindCX, Qubits: []int{0, 1}, Clbit: -1}
	require.Zero(t, m.ErrorProbability(g))
}

// TestDefault verifies the demonstration constants.
func TestDefault(t *testing.T) {
	m := noise.Default()
	require.InDelta(t, noise.DefaultP1, m.P1(), 1e-15)
	require.InDelta(t, noise.DefaultP2, m.P2(), 1e-15)
}

// TestKindCoverage pins the supported gate sets the channels attach to.
func TestKindCoverage(t *testing.T) {
	require.Len(t, circuit.SingleQubitKinds, 11)
	require.Len(t, circuit.TwoQubitKinds, 3)
	for _, k := range circuit.SingleQubitKinds {
		require.Equal(t, 1, k.Arity(), "kind %s", k)
	}
	for _, k := range circuit.TwoQubitKinds {
		require.Equal(t, 2, k.Arity(), "kind %s", k)
	}
}
