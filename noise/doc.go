// Package noise defines the parameterized stochastic error model applied
// during simulation: independent, memoryless depolarizing channels keyed
// by gate arity.
//
// 🚀 What is noise?
//
//	A Model pairs two probabilities with the gate kinds they cover:
//	  • P1 — depolarizing probability for every single-qubit gate kind.
//	  • P2 — depolarizing probability for every two-qubit gate kind.
//	With probability p the channel replaces the gate's operand state with
//	a uniformly random non-identity Pauli error on those operands; with
//	probability 1−p it does nothing. Errors are independent per gate
//	instance and carry no memory between shots.
//
// ✨ Why arity-keyed?
//
//   - Two-qubit gates are physically noisier than single-qubit ones, so
//     real calibration data is naturally grouped this way.
//   - The executing backend needs only one lookup per gate instance.
//
// Errors:
//
//   - ErrInvalidProbability — p1 or p2 outside [0, 1], rejected at
//     construction time.
//
// A Model is immutable after New and safe to share by reference across
// any number of concurrent executions.
package noise
