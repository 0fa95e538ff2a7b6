// Package circuit provides an immutable-after-finalize description of a
// quantum circuit: an ordered sequence of gate operations over a fixed
// number of qubits and classical bits.
//
// 🚀 What is circuit?
//
//	The foundation every other package builds on:
//	  • Gate — a tagged operation (Pauli/Clifford, rotation, two-qubit,
//	    measurement, barrier) with its operand indices and parameters.
//	  • Circuit — an append-only operation list with bounds checking at
//	    append time, plus Compose and Inverse returning fresh values.
//	  • Statistics — Depth (longest dependency chain), Size (operation
//	    count), Width (qubit count) and per-kind operation counts.
//	  • Draw — a plain-text wire diagram for quick inspection.
//
// ✨ Why this shape?
//
//   - Value semantics — Compose and Inverse never mutate their receiver,
//     so fragments can be reused and shared without aliasing surprises.
//   - Fail-fast — an out-of-range qubit or classical bit is rejected the
//     moment it is appended, never deferred to execution time.
//   - Finalize draws a hard line between construction and execution:
//     a finalized Circuit rejects further appends.
//
// Errors:
//
//   - ErrQubitOutOfRange  — operand qubit index outside [0, NumQubits).
//   - ErrClbitOutOfRange  — classical bit index outside [0, NumClbits).
//   - ErrSameQubit        — two-qubit gate addressed to a single qubit.
//   - ErrFinalized        — append attempted after Finalize.
//   - ErrIncompatible     — Compose with a fragment wider than the target.
//   - ErrNonInvertible    — Inverse of a circuit containing measurements.
//   - ErrBadWidth         — non-positive qubit count or negative clbit count.
//
// Complexity:
//
//   - Append/gate methods: O(1) amortized.
//   - Compose: O(len(other)).
//   - Inverse: O(len(c)).
//   - Depth:   O(len(c) · arity), Memory: O(qubits + clbits).
//
// See example_test.go for end-to-end usage.
package circuit
