// Package qmllab demonstrates quantum error correction with the 9-qubit
// Shor code on a built-in state-vector simulator, comparing a protected
// logical qubit against an unprotected one under depolarizing noise.
//
// 🚀 What is QML-LAB?
//
//	A small, self-contained laboratory organized in layers:
//		• circuit/    — immutable-after-finalize circuit values: gates,
//		  compose/inverse, depth/size/width statistics, text drawing
//		• noise/      — arity-keyed depolarizing error channels
//		• sim/        — the execution backend: per-shot state-vector
//		  evolution, reproducible parallel shots, measurement counts
//		• shorcode/   — the Shor-code fragments: encode, workload,
//		  correction, full protected circuit, fault injection
//		• experiment/ — the driver: protected-vs-unprotected comparison
//		  reports and the single-fault recovery demonstration
//
// ✨ Why this laboratory?
//
//   - Value semantics everywhere — circuits compose and invert without
//     hidden mutation, so fragments are safe to share and reuse.
//   - Reproducible randomness — shot k draws from its own seeded stream,
//     so runs are bit-identical at any worker count.
//   - Honest scope — exactly one fixed code with a deliberately stubbed
//     correction step (see shorcode), not a general QEC framework.
//
// Quick start:
//
//	backend := sim.New(sim.DefaultOptions())
//	drv, err := experiment.New(backend, experiment.DefaultOptions())
//	report, err := drv.RunComparison(ctx)
//
// Dive into the per-package example_test.go files for runnable tours:
// building the encoder, injecting a fault, and reading the comparison
// report.
package qmllab
