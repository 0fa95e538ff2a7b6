package experiment

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vtu23158/QML-LAB/circuit"
	"github.com/vtu23158/QML-LAB/noise"
	"github.com/vtu23158/QML-LAB/shorcode"
	"github.com/vtu23158/QML-LAB/sim"
)

// Backend executes a finalized circuit for a number of shots under an
// optional noise model. The sim package's Simulator satisfies this; tests
// may substitute stubs.
type Backend interface {
	Execute(ctx context.Context, c *circuit.Circuit, shots int, nm *noise.Model) (sim.Counts, error)
}

// Options configures a Driver.
//
// Fields:
//   - Shots       — trials per execution; values < 1 normalize to 1000.
//   - P1, P2      — depolarizing probabilities for the comparison's noise
//     model. The zero values mean a genuinely noise-free comparison; use
//     DefaultOptions for the demonstration defaults (0.01 / 0.03).
//   - FaultTarget — physical qubit flipped by the fault demonstration.
//   - Logger      — progress logger; nil normalizes to a silent logger.
//
// Example:
//
//	opts := experiment.DefaultOptions()
//	opts.Logger = log.New(os.Stderr)
//	drv, err := experiment.New(sim.New(sim.DefaultOptions()), opts)
type Options struct {
	Shots       int
	P1          float64
	P2          float64
	FaultTarget int
	Logger      *log.Logger
}

// DefaultShots is the trial count used by the reference demonstration.
const DefaultShots = 1000

// DefaultOptions returns the demonstration configuration: 1000 shots,
// the default depolarizing model, the canonical fault target, no logging.
func DefaultOptions() Options {
	return Options{
		Shots:       DefaultShots,
		P1:          noise.DefaultP1,
		P2:          noise.DefaultP2,
		FaultTarget: shorcode.DefaultFaultTarget,
	}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Shots < 1 {
		o.Shots = DefaultShots
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Stats summarizes the protected circuit's shape: Depth is the longest
// dependency chain, Size the operation count (barriers excluded), Width
// the qubit count. Purely informational.
type Stats struct {
	Depth int
	Size  int
	Width int
}
