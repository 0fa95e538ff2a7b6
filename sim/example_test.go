package sim_test

import (
	"context"
	"fmt"

	"github.com/vtu23158/QML-LAB/circuit"
	"github.com/vtu23158/QML-LAB/sim"
)

// ExampleRun executes a deterministic circuit and prints its counts.
func ExampleRun() {
	qc, _ := circuit.New(1, 1)
	_ = qc.X(0)
	_ = qc.Measure(0, 0)

	counts, _ := sim.Run(context.Background(), qc, 1000, nil)
	fmt.Println(counts)
	// Output:
	// {1: 1000}
}

// ExampleCounts_Probability reduces a count distribution to probabilities.
func ExampleCounts_Probability() {
	counts := sim.Counts{"0": 400, "1": 600}
	fmt.Printf("p0 = %.3f, p1 = %.3f\n", counts.Probability("0"), counts.Probability("1"))
	// Output:
	// p0 = 0.400, p1 = 0.600
}
