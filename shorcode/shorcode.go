package shorcode

import (
	"errors"

	"github.com/vtu23158/QML-LAB/circuit"
)

// CodeQubits is the number of physical qubits in the Shor code.
const CodeQubits = 9

// DefaultFaultTarget is the ancilla flipped by the canonical fault
// demonstration (middle ancilla of the second block).
const DefaultFaultTarget = 4

// Rotation angles of the fixed logical workload, shared with the
// unprotected reference circuit so both sides compute the same thing.
const (
	ThetaX = 0.5
	ThetaY = 0.3
	ThetaZ = 0.7
)

// Encode returns the 9-qubit Shor encoding fragment.
//
// Qubit 0 carries the logical state. The fragment first replicates it onto
// the block leaders 3 and 6, rotates the three leaders into the conjugate
// basis (phase-flip protection), then replicates each leader onto its two
// ancillae (bit-flip protection within each block):
//
//	CX(0,3) CX(0,6)                      — leader replication
//	H(0) H(3) H(6)                       — conjugate basis
//	CX(0,1) CX(0,2) CX(3,4) CX(3,5)
//	CX(6,7) CX(6,8)                      — in-block replication
//
// The fragment contains no measurements, so Encode().Inverse() is the
// exact decoder.
func Encode() (*circuit.Circuit, error) {
	qc, err := circuit.New(CodeQubits, 0, circuit.WithName("ShorEncode"))
	if err != nil {
		return nil, err
	}
	if err = errors.Join(
		qc.CX(0, 3), qc.CX(0, 6),
		qc.H(0), qc.H(3), qc.H(6),
		qc.CX(0, 1), qc.CX(0, 2),
		qc.CX(3, 4), qc.CX(3, 5),
		qc.CX(6, 7), qc.CX(6, 8),
	); err != nil {
		return nil, err
	}
	return qc, nil
}

// LogicalOps returns the fixed workload applied before encoding: an
// arbitrary mix of every supported single-qubit kind plus one of each
// two-qubit kind, standing in for the computation to be protected.
func LogicalOps() (*circuit.Circuit, error) {
	qc, err := circuit.New(CodeQubits, 0, circuit.WithName("QuantumOps"))
	if err != nil {
		return nil, err
	}
	if err = errors.Join(
		qc.H(0),
		qc.RX(ThetaX, 1), qc.RY(ThetaY, 2), qc.RZ(ThetaZ, 3),
		qc.S(4), qc.Sdg(5), qc.T(6), qc.Tdg(7), qc.X(8),
		qc.CX(0, 4), qc.CZ(1, 5), qc.SWAP(2, 6),
	); err != nil {
		return nil, err
	}
	return qc, nil
}

// Correction returns the correction fragment for the given syndrome.
//
// Limitation (preserved from the reference behavior): the syndrome is
// ignored and the fragment always applies X·Z·X·Z on qubit 0 behind a
// barrier — the identity up to an unobservable global phase. The fragment
// marks where a syndrome-driven correction belongs and contributes its
// gate cost under noise, but performs no actual decoding.
func Correction(syndrome string) (*circuit.Circuit, error) {
	_ = syndrome // see limitation above
	qc, err := circuit.New(CodeQubits, 0, circuit.WithName("ErrorCorrection"))
	if err != nil {
		return nil, err
	}
	if err = errors.Join(
		qc.Barrier(),
		qc.X(0), qc.Z(0), qc.X(0), qc.Z(0),
	); err != nil {
		return nil, err
	}
	return qc, nil
}

// FullCircuit composes the complete protected experiment over 9 qubits and
// one classical bit:
//
//	H(0)            — prepare the logical superposition
//	LogicalOps      — the computation to be protected
//	Encode          — spread qubit 0 across the code
//	barrier         — fence before the correction window
//	Correction      — (stub) correction step
//	Encode⁻¹        — decode
//	Measure(0 → 0)  — read the logical qubit
//
// Each fragment is built fresh; nothing is reused after inversion.
func FullCircuit() (*circuit.Circuit, error) {
	qc, err := circuit.New(CodeQubits, 1, circuit.WithName("ShorQEC"))
	if err != nil {
		return nil, err
	}
	if err = qc.H(0); err != nil {
		return nil, err
	}

	ops, err := LogicalOps()
	if err != nil {
		return nil, err
	}
	if qc, err = qc.Compose(ops); err != nil {
		return nil, err
	}

	enc, err := Encode()
	if err != nil {
		return nil, err
	}
	if qc, err = qc.Compose(enc); err != nil {
		return nil, err
	}
	if err = qc.Barrier(); err != nil {
		return nil, err
	}

	corr, err := Correction("000000")
	if err != nil {
		return nil, err
	}
	if qc, err = qc.Compose(corr); err != nil {
		return nil, err
	}

	dec, err := enc.Inverse()
	if err != nil {
		return nil, err
	}
	if qc, err = qc.Compose(dec); err != nil {
		return nil, err
	}

	if err = qc.Measure(0, 0); err != nil {
		return nil, err
	}
	return qc, nil
}

// FaultInjection composes the recovery demonstration: encode logical |1⟩,
// flip the designated physical qubit, decode, measure. In a noise-free run
// the measurement reads 1 with probability 1 for any target within the
// code (the single fault lies inside the correction radius).
func FaultInjection(target int) (*circuit.Circuit, error) {
	qc, err := circuit.New(CodeQubits, 1, circuit.WithName("ShorFault"))
	if err != nil {
		return nil, err
	}
	if err = qc.X(0); err != nil {
		return nil, err
	}

	enc, err := Encode()
	if err != nil {
		return nil, err
	}
	if qc, err = qc.Compose(enc); err != nil {
		return nil, err
	}

	// The injected fault: a single bit-flip between encode and decode.
	if err = qc.X(target); err != nil {
		return nil, err
	}

	dec, err := enc.Inverse()
	if err != nil {
		return nil, err
	}
	if qc, err = qc.Compose(dec); err != nil {
		return nil, err
	}

	if err = qc.Measure(0, 0); err != nil {
		return nil, err
	}
	return qc, nil
}
