// Package experiment orchestrates the protected-vs-unprotected comparison
// and the fault-injection demonstration, reducing raw measurement counts
// to summary statistics.
//
// 🚀 What is experiment?
//
//	A Driver owns a Backend (anything that can execute circuits — in this
//	repository the sim package's state-vector Simulator) plus the run
//	configuration, and exposes:
//	  • RunComparison — executes a 1-qubit unprotected reference and the
//	    full 9-qubit Shor-protected circuit under the same noise model and
//	    shot count, and assembles a Report of empirical probabilities,
//	    deviation-from-ideal percentages and standard errors.
//	  • DemonstrateErrorCorrection — executes the encode → single-fault →
//	    decode circuit noise-free and returns the raw counts.
//	  • CircuitStats — depth, size and width of the protected circuit.
//
// ✨ Division of labor:
//
//   - The driver never renders human-facing output beyond raw numeric
//     summaries; histogram drawing belongs to external reporting.
//   - It also never decides pass/fail — thresholds are a test concern.
//   - Progress is reported through an optional structured logger
//     (charmbracelet/log); the default is silent.
//
// Failures from the backend abort the current run immediately and surface
// to the caller wrapped with the failing stage; there are no retries and
// no partial reports.
package experiment
