package circuit

import "errors"

// Sentinel errors for circuit construction and transformation.
var (
	// ErrBadWidth indicates a non-positive qubit count or a negative
	// classical-bit count was passed to New.
	ErrBadWidth = errors.New("circuit: qubit count must be ≥ 1 and clbit count ≥ 0")

	// ErrQubitOutOfRange indicates an operation referenced a qubit index
	// outside the circuit's declared bounds.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrClbitOutOfRange indicates a measurement referenced a classical bit
	// index outside the circuit's declared bounds.
	ErrClbitOutOfRange = errors.New("circuit: classical bit index out of range")

	// ErrSameQubit indicates a two-qubit gate was given the same qubit twice.
	ErrSameQubit = errors.New("circuit: two-qubit gate operands must differ")

	// ErrFinalized indicates an append was attempted on a finalized circuit.
	ErrFinalized = errors.New("circuit: circuit is finalized")

	// ErrIncompatible indicates Compose was given a fragment that does not
	// fit inside the target circuit's qubit/clbit bounds.
	ErrIncompatible = errors.New("circuit: composed fragment exceeds circuit bounds")

	// ErrNonInvertible indicates Inverse was called on a circuit containing
	// a non-unitary operation (measurement).
	ErrNonInvertible = errors.New("circuit: circuit with measurements has no inverse")

	// ErrUnknownKind indicates an operation with an unrecognized gate kind.
	ErrUnknownKind = errors.New("circuit: unknown gate kind")
)
