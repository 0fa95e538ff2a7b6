package experiment

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vtu23158/QML-LAB/sim"
)

// IdealP0 is the reference probability the deviation metric compares
// against: a perfectly balanced logical superposition.
const IdealP0 = 0.5

// Deviation expresses how far an observed 0-probability strays from
// IdealP0, as a percentage of the maximum possible deviation (0.5):
//
//	deviation = |0.5 − p0| × 200
//
// 0% means a perfectly balanced outcome, 100% a fully collapsed one.
func Deviation(p0 float64) float64 {
	return math.Abs(IdealP0-p0) * 200
}

// Summary reduces one execution's counts over a single classical bit to
// its empirical statistics. Read-only once built.
type Summary struct {
	// Counts is the raw bitstring → frequency distribution.
	Counts sim.Counts

	// P0 and P1 are the empirical probabilities of reading 0 and 1.
	P0 float64
	P1 float64

	// Deviation is Deviation(P0), in percent.
	Deviation float64

	// StdErr is the standard error of the observed bit's mean, a measure
	// of how much sampling noise the probabilities carry at this shot
	// count.
	StdErr float64
}

// summarize builds a Summary from single-bit counts.
func summarize(counts sim.Counts) Summary {
	vals := []float64{0, 1}
	weights := []float64{float64(counts["0"]), float64(counts["1"])}
	shots := floats.Sum(weights)

	s := Summary{Counts: counts}
	if shots == 0 {
		return s
	}
	s.P0 = weights[0] / shots
	s.P1 = stat.Mean(vals, weights)
	s.Deviation = Deviation(s.P0)
	s.StdErr = stat.StdErr(stat.StdDev(vals, weights), shots)
	return s
}

// Report is the read-only outcome of one RunComparison: the same noise
// model and shot count applied to the unprotected 1-qubit reference and
// the Shor-protected 9-qubit circuit. Created once per run, never mutated.
type Report struct {
	Unprotected Summary
	Protected   Summary

	// Run configuration the comparison was executed under.
	Shots   int
	NoiseP1 float64
	NoiseP2 float64
}
