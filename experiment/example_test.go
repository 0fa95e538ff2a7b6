package experiment_test

import (
	"context"
	"fmt"

	"github.com/vtu23158/QML-LAB/experiment"
	"github.com/vtu23158/QML-LAB/sim"
)

// ExampleDeviation shows the deviation metric on its reference inputs.
func ExampleDeviation() {
	fmt.Printf("%.2f%%\n", experiment.Deviation(0.5))
	fmt.Printf("%.2f%%\n", experiment.Deviation(0.4))
	// Output:
	// 0.00%
	// 20.00%
}

// ExampleDriver_DemonstrateErrorCorrection runs the canonical fault
// demonstration: a bit-flip on qubit 4 between encode and decode still
// yields the encoded 1 on every noise-free shot.
func ExampleDriver_DemonstrateErrorCorrection() {
	backend := sim.New(sim.Options{Seed: 1, Workers: 1})
	drv, _ := experiment.New(backend, experiment.DefaultOptions())

	counts, _ := drv.DemonstrateErrorCorrection(context.Background())
	fmt.Println(counts)
	// Output:
	// {1: 1000}
}

// ExampleDriver_CircuitStats reports the protected circuit's shape.
func ExampleDriver_CircuitStats() {
	backend := sim.New(sim.DefaultOptions())
	drv, _ := experiment.New(backend, experiment.DefaultOptions())

	stats, _ := drv.CircuitStats()
	fmt.Println("depth:", stats.Depth)
	fmt.Println("size:", stats.Size)
	fmt.Println("width:", stats.Width)
	// Output:
	// depth: 18
	// size: 40
	// width: 9
}

// ExampleDriver_RunComparison executes the full noisy comparison and
// prints the shape of the resulting report. The exact probabilities vary
// with the seed, so only structural facts are printed.
func ExampleDriver_RunComparison() {
	backend := sim.New(sim.Options{Seed: 1, Workers: 1})
	drv, _ := experiment.New(backend, experiment.DefaultOptions())

	report, _ := drv.RunComparison(context.Background())
	fmt.Println("shots:", report.Shots)
	fmt.Println("unprotected total:", report.Unprotected.Counts.Total())
	fmt.Println("protected total:", report.Protected.Counts.Total())
	// Output:
	// shots: 1000
	// unprotected total: 1000
	// protected total: 1000
}
