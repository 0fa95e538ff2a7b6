package circuit

// Kind identifies a gate operation. Values match the lower-case names used
// by common circuit interchange formats (OpenQASM / simulator basis sets),
// so noise models can be keyed by the same strings.
type Kind string

// Supported gate kinds.
const (
	KindH   Kind = "h"   // Hadamard
	KindX   Kind = "x"   // Pauli-X
	KindY   Kind = "y"   // Pauli-Y
	KindZ   Kind = "z"   // Pauli-Z
	KindS   Kind = "s"   // phase gate √Z
	KindSdg Kind = "sdg" // S†
	KindT   Kind = "t"   // π/8 gate
	KindTdg Kind = "tdg" // T†
	KindRX  Kind = "rx"  // rotation about X by Theta
	KindRY  Kind = "ry"  // rotation about Y by Theta
	KindRZ  Kind = "rz"  // rotation about Z by Theta

	KindCX   Kind = "cx"   // controlled-X
	KindCZ   Kind = "cz"   // controlled-Z
	KindSWAP Kind = "swap" // swap two qubits

	KindMeasure Kind = "measure" // measure one qubit into one classical bit
	KindBarrier Kind = "barrier" // execution-ordering fence, no operational effect
)

// SingleQubitKinds lists every unitary gate kind acting on one qubit.
// Noise models attach their one-qubit channel to exactly this set.
var SingleQubitKinds = []Kind{
	KindH, KindX, KindY, KindZ, KindS, KindSdg, KindT, KindTdg,
	KindRX, KindRY, KindRZ,
}

// TwoQubitKinds lists every unitary gate kind acting on two qubits.
// Noise models attach their two-qubit channel to exactly this set.
var TwoQubitKinds = []Kind{KindCX, KindCZ, KindSWAP}

// Arity reports the number of qubit operands for the kind:
// 1 for single-qubit gates and measurements, 2 for two-qubit gates,
// 0 for barriers (which fence every qubit but address none).
func (k Kind) Arity() int {
	switch k {
	case KindCX, KindCZ, KindSWAP:
		return 2
	case KindBarrier:
		return 0
	default:
		return 1
	}
}

// IsUnitary reports whether the kind denotes a reversible gate
// (everything except measurements and barriers).
func (k Kind) IsUnitary() bool {
	return k != KindMeasure && k != KindBarrier
}

// IsRotation reports whether the kind carries a continuous angle parameter.
func (k Kind) IsRotation() bool {
	return k == KindRX || k == KindRY || k == KindRZ
}

// known reports whether the kind belongs to the supported set.
func (k Kind) known() bool {
	switch k {
	case KindH, KindX, KindY, KindZ, KindS, KindSdg, KindT, KindTdg,
		KindRX, KindRY, KindRZ, KindCX, KindCZ, KindSWAP,
		KindMeasure, KindBarrier:
		return true
	}
	return false
}

// Gate is a single tagged operation inside a Circuit.
//
// Qubits holds the operand indices in application order: for controlled
// gates the control comes first, then the target. Theta is meaningful only
// for rotation kinds; Clbit only for measurements (−1 otherwise). Barriers
// carry no operands and fence every qubit.
type Gate struct {
	Kind   Kind
	Qubits []int
	Theta  float64
	Clbit  int
}

// inverse returns the gate that undoes g. Self-inverse kinds (Pauli,
// Hadamard, CX, CZ, SWAP, barrier) are returned as-is; S/T swap with their
// daggered forms; rotations negate their angle. Measurements have no
// inverse and yield ErrNonInvertible.
func (g Gate) inverse() (Gate, error) {
	inv := Gate{Kind: g.Kind, Qubits: append([]int(nil), g.Qubits...), Theta: g.Theta, Clbit: -1}
	switch g.Kind {
	case KindS:
		inv.Kind = KindSdg
	case KindSdg:
		inv.Kind = KindS
	case KindT:
		inv.Kind = KindTdg
	case KindTdg:
		inv.Kind = KindT
	case KindRX, KindRY, KindRZ:
		inv.Theta = -g.Theta
	case KindMeasure:
		return Gate{}, ErrNonInvertible
	}
	return inv, nil
}

// Option configures a Circuit at construction time.
type Option func(c *Circuit)

// WithName labels the circuit; the label shows up in Draw output and
// error messages, and survives Compose on the receiver side.
func WithName(name string) Option {
	return func(c *Circuit) { c.name = name }
}
