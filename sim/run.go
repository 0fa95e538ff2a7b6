package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vtu23158/QML-LAB/circuit"
	"github.com/vtu23158/QML-LAB/noise"
)

// Simulator is a state-vector execution backend. Its native gate set
// matches the circuit package's builder set, so lowering reduces to
// barrier elision plus validation; semantics are preserved exactly.
//
// A Simulator is stateless between calls and safe for concurrent use.
type Simulator struct {
	opts Options
}

// New returns a Simulator with the given options (normalized in place of
// unset fields).
func New(opts Options) *Simulator {
	opts.normalize()
	return &Simulator{opts: opts}
}

// Run executes the circuit with default options: a convenience wrapper
// around New(DefaultOptions()).Execute.
func Run(ctx context.Context, c *circuit.Circuit, shots int, nm *noise.Model) (Counts, error) {
	return New(DefaultOptions()).Execute(ctx, c, shots, nm)
}

// Execute performs `shots` independent trials of the circuit and returns
// the observed bitstring frequencies. The circuit is finalized on entry
// and never mutated.
//
// When nm is non-nil, every unitary gate instance independently suffers a
// depolarizing error with the model's arity-keyed probability: a uniformly
// random non-identity Pauli on the gate's operands, memoryless between
// gates and between shots.
//
// Steps:
//  1. Finalize and validate the circuit; lower it (barrier elision).
//  2. Partition shots across opts.Workers goroutines; shot k uses a PCG
//     stream seeded (opts.Seed, k) so results are independent of the
//     partitioning.
//  3. Each shot evolves a fresh |0…0⟩ state through the gate list,
//     sampling measurements into a classical register, and tallies the
//     register's bitstring.
//  4. Merge per-worker tallies. The merged Total always equals shots.
//
// Errors: ErrInvalidShots, ErrTooWide (both wrap ErrExecution), or the
// context's error if ctx is cancelled mid-run (counts are discarded —
// there are no partial results).
//
// Complexity per shot: O(len(c) · 2^qubits).
func (s *Simulator) Execute(ctx context.Context, c *circuit.Circuit, shots int, nm *noise.Model) (Counts, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShots, shots)
	}
	if c.NumQubits() > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits, limit %d", ErrTooWide, c.NumQubits(), MaxQubits)
	}
	c.Finalize()
	ops := lower(c)

	var (
		mu    sync.Mutex
		total = make(Counts, 2)
	)
	g, ctx := errgroup.WithContext(ctx)
	workers := s.opts.Workers
	if workers > shots {
		workers = shots
	}
	// Static partition: worker w owns shots w, w+workers, w+2·workers, …
	// Ownership only decides scheduling; randomness depends on the shot
	// index alone.
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make(Counts, 2)
			for shot := w; shot < shots; shot += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewPCG(s.opts.Seed, uint64(shot)))
				local[s.runShot(ops, c, nm, rng)]++
			}
			mu.Lock()
			total.merge(local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}

// runShot evolves one trial and returns the classical register's
// bitstring, most-significant classical bit first.
func (s *Simulator) runShot(ops []circuit.Gate, c *circuit.Circuit, nm *noise.Model, rng *rand.Rand) string {
	st := newState(c.NumQubits())
	creg := make([]byte, c.NumClbits())
	for i := range creg {
		creg[i] = '0'
	}

	for _, g := range ops {
		if g.Kind == circuit.KindMeasure {
			if st.measure(g.Qubits[0], rng) == 1 {
				creg[c.NumClbits()-1-g.Clbit] = '1'
			} else {
				creg[c.NumClbits()-1-g.Clbit] = '0'
			}
			continue
		}
		st.apply(g)
		if p := nm.ErrorProbability(g); p > 0 && rng.Float64() < p {
			st.injectError(g.Qubits, rng)
		}
	}
	return string(creg)
}

// lower is the transpilation stand-in: the builder's gate set is already
// native, so lowering only strips barriers (pure ordering directives) and
// copies the operation list out of the circuit value.
func lower(c *circuit.Circuit) []circuit.Gate {
	all := c.Operations()
	ops := make([]circuit.Gate, 0, len(all))
	for _, g := range all {
		if g.Kind == circuit.KindBarrier {
			continue
		}
		ops = append(ops, g)
	}
	return ops
}
