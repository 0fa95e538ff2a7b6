package shorcode_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vtu23158/QML-LAB/circuit"
	"github.com/vtu23158/QML-LAB/shorcode"
	"github.com/vtu23158/QML-LAB/sim"
)

// ShorSuite exercises fragment shapes and the code's physical properties.
type ShorSuite struct {
	suite.Suite
}

// TestEncodeShape pins the encoder's exact operation counts as a
// regression guard.
func (s *ShorSuite) TestEncodeShape() {
	enc, err := shorcode.Encode()
	require.NoError(s.T(), err)

	require.Equal(s.T(), shorcode.CodeQubits, enc.NumQubits())
	require.Equal(s.T(), 0, enc.NumClbits())
	require.Equal(s.T(), 11, enc.Size())
	require.Equal(s.T(), 0, enc.BarrierCount())

	counts := enc.CountOps()
	require.Equal(s.T(), 8, counts[circuit.KindCX])
	require.Equal(s.T(), 3, counts[circuit.KindH])
}

// TestLogicalOpsShape pins the workload fragment's operation counts.
func (s *ShorSuite) TestLogicalOpsShape() {
	ops, err := shorcode.LogicalOps()
	require.NoError(s.T(), err)

	require.Equal(s.T(), 12, ops.Size())
	counts := ops.CountOps()
	require.Equal(s.T(), 1, counts[circuit.KindCX])
	require.Equal(s.T(), 1, counts[circuit.KindCZ])
	require.Equal(s.T(), 1, counts[circuit.KindSWAP])
	require.Equal(s.T(), 1, counts[circuit.KindRX])
	require.Equal(s.T(), 1, counts[circuit.KindRY])
	require.Equal(s.T(), 1, counts[circuit.KindRZ])
}

// TestCorrectionIgnoresSyndrome documents the preserved stub behavior:
// identical output for any syndrome value.
func (s *ShorSuite) TestCorrectionIgnoresSyndrome() {
	a, err := shorcode.Correction("000000")
	require.NoError(s.T(), err)
	b, err := shorcode.Correction("101010")
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.Operations(), b.Operations())
	require.Equal(s.T(), 4, a.Size())
	require.Equal(s.T(), 1, a.BarrierCount())

	// The fixed sequence is X·Z·X·Z on qubit 0.
	var kinds []circuit.Kind
	for _, g := range a.Operations() {
		kinds = append(kinds, g.Kind)
	}
	require.Equal(s.T(), []circuit.Kind{
		circuit.KindBarrier,
		circuit.KindX, circuit.KindZ, circuit.KindX, circuit.KindZ,
	}, kinds)
}

// TestFullCircuitShape verifies the end-to-end composition: 9 qubits,
// 1 classical bit, exactly 2 barriers, and the expected operation total.
func (s *ShorSuite) TestFullCircuitShape() {
	qc, err := shorcode.FullCircuit()
	require.NoError(s.T(), err)

	require.Equal(s.T(), 9, qc.NumQubits())
	require.Equal(s.T(), 1, qc.NumClbits())
	require.Equal(s.T(), 2, qc.BarrierCount())
	// prep(1) + workload(12) + encode(11) + correction(4) + decode(11) + measure(1)
	require.Equal(s.T(), 40, qc.Size())
	require.Equal(s.T(), 9, qc.Width())
	require.Greater(s.T(), qc.Depth(), 0)
}

// TestEncodeDecodeRoundTrip verifies that decode = inverse(encode) exactly
// restores the logical state when nothing goes wrong in between.
func (s *ShorSuite) TestEncodeDecodeRoundTrip() {
	for _, prepared := range []int{0, 1} {
		qc, err := circuit.New(shorcode.CodeQubits, 1)
		require.NoError(s.T(), err)
		if prepared == 1 {
			require.NoError(s.T(), qc.X(0))
		}

		enc, err := shorcode.Encode()
		require.NoError(s.T(), err)
		qc, err = qc.Compose(enc)
		require.NoError(s.T(), err)

		dec, err := enc.Inverse()
		require.NoError(s.T(), err)
		qc, err = qc.Compose(dec)
		require.NoError(s.T(), err)
		require.NoError(s.T(), qc.Measure(0, 0))

		counts, err := sim.Run(context.Background(), qc, 300, nil)
		require.NoError(s.T(), err)
		want := sim.Counts{fmt.Sprint(prepared): 300}
		require.Equal(s.T(), want, counts, "prepared |%d⟩", prepared)
	}
}

// TestSingleFaultTolerance verifies the distance-3 property: one bit-flip
// on any of the nine physical qubits between encode and decode leaves the
// measured logical value intact in a noise-free run.
func (s *ShorSuite) TestSingleFaultTolerance() {
	for target := 0; target < shorcode.CodeQubits; target++ {
		qc, err := shorcode.FaultInjection(target)
		require.NoError(s.T(), err)

		counts, err := sim.Run(context.Background(), qc, 300, nil)
		require.NoError(s.T(), err)
		require.Equal(s.T(), sim.Counts{"1": 300}, counts, "fault on qubit %d", target)
	}
}

// TestFaultInjectionRejectsBadTarget verifies append-time bounds checking
// reaches the builder surface.
func (s *ShorSuite) TestFaultInjectionRejectsBadTarget() {
	_, err := shorcode.FaultInjection(9)
	require.ErrorIs(s.T(), err, circuit.ErrQubitOutOfRange)

	_, err = shorcode.FaultInjection(-1)
	require.ErrorIs(s.T(), err, circuit.ErrQubitOutOfRange)
}

// TestFullCircuitNoiseFreeBaseline verifies the protected circuit's ideal
// outcome: the two Hadamards on qubit 0 cancel before encoding, so a
// noise-free run always reads 0.
func (s *ShorSuite) TestFullCircuitNoiseFreeBaseline() {
	qc, err := shorcode.FullCircuit()
	require.NoError(s.T(), err)

	counts, err := sim.Run(context.Background(), qc, 300, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), sim.Counts{"0": 300}, counts)
}

func TestShorSuite(t *testing.T) {
	suite.Run(t, new(ShorSuite))
}
