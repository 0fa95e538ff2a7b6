package experiment

import (
	"context"
	"fmt"

	"github.com/vtu23158/QML-LAB/circuit"
	"github.com/vtu23158/QML-LAB/noise"
	"github.com/vtu23158/QML-LAB/shorcode"
	"github.com/vtu23158/QML-LAB/sim"
)

// Driver runs the demonstration experiments against a Backend.
//
// The driver holds its noise model by reference and shares it, read-only,
// across executions; it carries no other mutable state between runs.
type Driver struct {
	backend Backend
	model   *noise.Model
	opts    Options
}

// New builds a Driver over the given backend. The options' noise
// probabilities are validated here, at construction time; an out-of-range
// value fails with noise.ErrInvalidProbability before anything runs.
func New(backend Backend, opts Options) (*Driver, error) {
	opts.normalize()
	model, err := noise.New(opts.P1, opts.P2)
	if err != nil {
		return nil, err
	}
	return &Driver{backend: backend, model: model, opts: opts}, nil
}

// unprotectedReference builds the 1-qubit baseline: the same prepared
// rotation sequence as the protected workload's logical qubit, with no
// encoding around it.
func unprotectedReference() (*circuit.Circuit, error) {
	qc, err := circuit.New(1, 1, circuit.WithName("Unprotected"))
	if err != nil {
		return nil, err
	}
	steps := []error{
		qc.H(0),
		qc.RX(shorcode.ThetaX, 0),
		qc.RY(shorcode.ThetaY, 0),
		qc.RZ(shorcode.ThetaZ, 0),
		qc.Measure(0, 0),
	}
	for _, e := range steps {
		if e != nil {
			return nil, e
		}
	}
	return qc, nil
}

// RunComparison executes the unprotected reference and the full protected
// circuit under the same noise model and shot count, and reduces both to
// a Report.
//
// Steps:
//  1. Build both circuits (construction errors surface immediately).
//  2. Execute the unprotected reference.
//  3. Execute the protected circuit.
//  4. Summarize probabilities, deviations and standard errors.
//
// A backend failure aborts the run with no partial report; the error names
// the failing stage and wraps the backend's error (sim.ErrExecution for
// the in-repo simulator).
func (d *Driver) RunComparison(ctx context.Context) (*Report, error) {
	ref, err := unprotectedReference()
	if err != nil {
		return nil, fmt.Errorf("experiment: build unprotected reference: %w", err)
	}
	protected, err := shorcode.FullCircuit()
	if err != nil {
		return nil, fmt.Errorf("experiment: build protected circuit: %w", err)
	}

	d.opts.Logger.Info("running without error correction",
		"shots", d.opts.Shots, "p1", d.model.P1(), "p2", d.model.P2())
	rawRef, err := d.backend.Execute(ctx, ref, d.opts.Shots, d.model)
	if err != nil {
		return nil, fmt.Errorf("experiment: unprotected run: %w", err)
	}

	d.opts.Logger.Info("running with Shor error correction",
		"shots", d.opts.Shots)
	rawProt, err := d.backend.Execute(ctx, protected, d.opts.Shots, d.model)
	if err != nil {
		return nil, fmt.Errorf("experiment: protected run: %w", err)
	}

	report := &Report{
		Unprotected: summarize(rawRef),
		Protected:   summarize(rawProt),
		Shots:       d.opts.Shots,
		NoiseP1:     d.model.P1(),
		NoiseP2:     d.model.P2(),
	}
	d.opts.Logger.Info("comparison complete",
		"unprotected_p0", report.Unprotected.P0,
		"protected_p0", report.Protected.P0,
		"unprotected_deviation_pct", report.Unprotected.Deviation,
		"protected_deviation_pct", report.Protected.Deviation)
	return report, nil
}

// DemonstrateErrorCorrection executes the fault-injection circuit —
// encode |1⟩, bit-flip the configured target, decode, measure — with no
// noise model, and returns the raw counts for inspection. With the fault
// inside the code's correction radius every shot reads the encoded 1.
func (d *Driver) DemonstrateErrorCorrection(ctx context.Context) (sim.Counts, error) {
	qc, err := shorcode.FaultInjection(d.opts.FaultTarget)
	if err != nil {
		return nil, fmt.Errorf("experiment: build fault-injection circuit: %w", err)
	}

	d.opts.Logger.Info("demonstrating error correction",
		"fault_target", d.opts.FaultTarget, "shots", d.opts.Shots)
	counts, err := d.backend.Execute(ctx, qc, d.opts.Shots, nil)
	if err != nil {
		return nil, fmt.Errorf("experiment: fault-injection run: %w", err)
	}
	d.opts.Logger.Info("fault-injection counts", "counts", counts)
	return counts, nil
}

// CircuitStats reports the protected circuit's depth, size and width.
// Purely informational; no execution happens.
func (d *Driver) CircuitStats() (Stats, error) {
	qc, err := shorcode.FullCircuit()
	if err != nil {
		return Stats{}, fmt.Errorf("experiment: build protected circuit: %w", err)
	}
	return Stats{Depth: qc.Depth(), Size: qc.Size(), Width: qc.Width()}, nil
}
