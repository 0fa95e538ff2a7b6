// Package shorcode builds the circuit fragments of the 9-qubit Shor
// error-correcting code and the demonstration circuits around it.
//
// 🚀 What is shorcode?
//
//	Stateless builders returning circuit values:
//	  • Encode — spreads logical qubit 0 across nine physical qubits:
//	    a three-way phase-flip repetition over qubits {0, 3, 6} (via the
//	    conjugate basis), then a bit-flip repetition of each of those into
//	    two ancillae ({1,2}, {4,5}, {7,8}).
//	  • LogicalOps — a fixed arbitrary gate sequence standing in for "the
//	    computation to be protected".
//	  • Correction — the (deliberately simplified) correction step.
//	  • FullCircuit — prepare → compute → encode → correct → decode →
//	    measure, the protected end-to-end circuit.
//	  • FaultInjection — encode |1⟩, flip one physical qubit, decode,
//	    measure: the code's distance-3 recovery demonstration.
//
// ✨ Key property:
//
//	Encode is exactly invertible; decoding is Encode().Inverse(). A single
//	bit-flip on any physical qubit between encode and decode leaves the
//	measured logical value untouched in a noise-free run.
//
// Known limitation: Correction ignores its syndrome argument and applies a
// fixed X·Z·X·Z sequence on qubit 0 — the identity up to global phase. It
// models where a syndrome-driven correction would sit (and what its gates
// cost under noise) without performing real decoding. A genuine decoder
// would measure stabilizers into ancillae and look the correction up from
// the syndrome bits; that extension is intentionally not implemented.
package shorcode
