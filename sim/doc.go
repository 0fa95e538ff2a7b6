// Package sim executes finalized circuits on a complex128 state-vector
// simulator and returns measurement count distributions.
//
// 🚀 What is sim?
//
//	The execution boundary of the repository:
//	  • Simulator — a backend with a fixed native gate set matching the
//	    circuit package's builder set; a lightweight lowering pass elides
//	    barriers and validates the circuit before any state is allocated.
//	  • Execute / Run — perform N independent shots, each evolving a fresh
//	    |0…0⟩ state through the gate list, sampling measurement outcomes
//	    and optional depolarizing errors, and tallying the resulting
//	    classical bitstrings into a Counts map.
//	  • Counts — bitstring → frequency, with probability helpers.
//
// ✨ Concurrency & reproducibility:
//
//   - Shots are independent: shot k draws from its own PCG stream seeded
//     (Seed, k), so no shot's randomness depends on another's and results
//     are bit-identical whether shots run serially or across workers.
//   - Workers > 1 fans shots out over an errgroup; cancellation of the
//     supplied context aborts between shots with the context's error.
//
// Errors:
//
//   - ErrExecution     — base sentinel for every backend rejection.
//   - ErrInvalidShots  — non-positive shot count (wraps ErrExecution).
//   - ErrTooWide       — circuit wider than the simulable limit (wraps
//     ErrExecution; the state vector grows as 2^qubits).
//
// There are no retries: a failure here indicates a structural problem with
// the circuit or configuration, never a transient condition.
package sim
