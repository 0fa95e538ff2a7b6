package sim

import "runtime"

// MaxQubits caps the simulable circuit width. 2^26 complex128 amplitudes
// is already a 1 GiB state vector; anything wider is rejected with
// ErrTooWide rather than thrashing the host.
const MaxQubits = 26

// Options configures a Simulator.
//
// Fields:
//   - Seed    — base seed for the per-shot PCG streams. Shot k draws from
//     a stream seeded (Seed, k), so two runs with equal Seed, circuit and
//     shot count produce identical Counts, regardless of Workers.
//   - Workers — number of goroutines sharing the shot loop. Values < 1
//     normalize to runtime.GOMAXPROCS(0).
//
// Example:
//
//	opts := sim.DefaultOptions()
//	opts.Seed = 42
//	counts, err := sim.New(opts).Execute(ctx, qc, 1000, noise.Default())
type Options struct {
	Seed    uint64
	Workers int
}

// DefaultOptions returns the canonical options: Seed 1, one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{Seed: 1, Workers: runtime.GOMAXPROCS(0)}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
}
