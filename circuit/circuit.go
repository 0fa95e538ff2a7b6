package circuit

import "fmt"

// Circuit is an ordered sequence of gate operations over a fixed number of
// qubits and classical bits.
//
// A Circuit is created empty, grown by the gate methods (H, CX, Measure, …)
// or by Compose, and becomes immutable once Finalize is called — typically
// at the moment it is handed to an execution backend. Compose and Inverse
// never mutate their receiver; they return fresh values.
type Circuit struct {
	name   string
	qubits int
	clbits int
	ops    []Gate
	final  bool
}

// New creates an empty circuit over `qubits` qubits and `clbits` classical
// bits. Returns ErrBadWidth if qubits < 1 or clbits < 0.
//
// Example:
//
//	qc, err := circuit.New(9, 1, circuit.WithName("ShorQEC"))
func New(qubits, clbits int, opts ...Option) (*Circuit, error) {
	if qubits < 1 || clbits < 0 {
		return nil, fmt.Errorf("%w: got %d qubits, %d clbits", ErrBadWidth, qubits, clbits)
	}
	c := &Circuit{qubits: qubits, clbits: clbits}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name returns the circuit's label (empty if unnamed).
func (c *Circuit) Name() string { return c.name }

// NumQubits returns the declared qubit count.
func (c *Circuit) NumQubits() int { return c.qubits }

// NumClbits returns the declared classical-bit count.
func (c *Circuit) NumClbits() int { return c.clbits }

// Operations returns a copy of the ordered operation list.
func (c *Circuit) Operations() []Gate {
	out := make([]Gate, len(c.ops))
	copy(out, c.ops)
	return out
}

// Finalize marks the circuit immutable and returns it. Any subsequent
// append fails with ErrFinalized. Finalize is idempotent.
func (c *Circuit) Finalize() *Circuit {
	c.final = true
	return c
}

// Finalized reports whether the circuit has been finalized.
func (c *Circuit) Finalized() bool { return c.final }

// append validates g against the circuit's bounds and appends it.
// Validation happens here, at append time, never deferred to execution.
func (c *Circuit) append(g Gate) error {
	if c.final {
		return fmt.Errorf("%w: %q", ErrFinalized, c.name)
	}
	if !g.Kind.known() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, g.Kind)
	}
	for _, q := range g.Qubits {
		if q < 0 || q >= c.qubits {
			return fmt.Errorf("%w: qubit %d, circuit has %d", ErrQubitOutOfRange, q, c.qubits)
		}
	}
	if g.Kind.Arity() == 2 && g.Qubits[0] == g.Qubits[1] {
		return fmt.Errorf("%w: %s on qubit %d", ErrSameQubit, g.Kind, g.Qubits[0])
	}
	if g.Kind == KindMeasure {
		if g.Clbit < 0 || g.Clbit >= c.clbits {
			return fmt.Errorf("%w: clbit %d, circuit has %d", ErrClbitOutOfRange, g.Clbit, c.clbits)
		}
	}
	c.ops = append(c.ops, g)
	return nil
}

// single appends a parameter-free single-qubit gate.
func (c *Circuit) single(k Kind, q int) error {
	return c.append(Gate{Kind: k, Qubits: []int{q}, Clbit: -1})
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) error { return c.single(KindH, q) }

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) error { return c.single(KindX, q) }

// Y appends a Pauli-Y gate on qubit q.
func (c *Circuit) Y(q int) error { return c.single(KindY, q) }

// Z appends a Pauli-Z gate on qubit q.
func (c *Circuit) Z(q int) error { return c.single(KindZ, q) }

// S appends a phase gate (√Z) on qubit q.
func (c *Circuit) S(q int) error { return c.single(KindS, q) }

// Sdg appends an S† gate on qubit q.
func (c *Circuit) Sdg(q int) error { return c.single(KindSdg, q) }

// T appends a T (π/8) gate on qubit q.
func (c *Circuit) T(q int) error { return c.single(KindT, q) }

// Tdg appends a T† gate on qubit q.
func (c *Circuit) Tdg(q int) error { return c.single(KindTdg, q) }

// RX appends a rotation about the X axis by theta radians on qubit q.
func (c *Circuit) RX(theta float64, q int) error {
	return c.append(Gate{Kind: KindRX, Qubits: []int{q}, Theta: theta, Clbit: -1})
}

// RY appends a rotation about the Y axis by theta radians on qubit q.
func (c *Circuit) RY(theta float64, q int) error {
	return c.append(Gate{Kind: KindRY, Qubits: []int{q}, Theta: theta, Clbit: -1})
}

// RZ appends a rotation about the Z axis by theta radians on qubit q.
func (c *Circuit) RZ(theta float64, q int) error {
	return c.append(Gate{Kind: KindRZ, Qubits: []int{q}, Theta: theta, Clbit: -1})
}

// CX appends a controlled-X gate (control, target).
func (c *Circuit) CX(control, target int) error {
	return c.append(Gate{Kind: KindCX, Qubits: []int{control, target}, Clbit: -1})
}

// CZ appends a controlled-Z gate (control, target).
func (c *Circuit) CZ(control, target int) error {
	return c.append(Gate{Kind: KindCZ, Qubits: []int{control, target}, Clbit: -1})
}

// SWAP appends a swap of qubits a and b.
func (c *Circuit) SWAP(a, b int) error {
	return c.append(Gate{Kind: KindSWAP, Qubits: []int{a, b}, Clbit: -1})
}

// Measure appends a computational-basis measurement of qubit q into
// classical bit cl.
func (c *Circuit) Measure(q, cl int) error {
	return c.append(Gate{Kind: KindMeasure, Qubits: []int{q}, Clbit: cl})
}

// Barrier appends an execution-ordering fence across every qubit. Barriers
// have no operational effect; they only constrain reordering and Depth.
func (c *Circuit) Barrier() error {
	return c.append(Gate{Kind: KindBarrier, Clbit: -1})
}

// Compose returns a new circuit consisting of c's operations followed by
// other's. The receiver and other are left untouched; the result carries
// c's name and dimensions and is not finalized.
//
// Returns ErrIncompatible if other declares more qubits or classical bits
// than c provides.
func (c *Circuit) Compose(other *Circuit) (*Circuit, error) {
	if other.qubits > c.qubits || other.clbits > c.clbits {
		return nil, fmt.Errorf("%w: %dq/%dc into %dq/%dc",
			ErrIncompatible, other.qubits, other.clbits, c.qubits, c.clbits)
	}
	out := &Circuit{
		name:   c.name,
		qubits: c.qubits,
		clbits: c.clbits,
		ops:    make([]Gate, 0, len(c.ops)+len(other.ops)),
	}
	out.ops = append(out.ops, c.ops...)
	for _, g := range other.ops {
		// Copy operand slices so the fragments never share backing arrays.
		cp := g
		cp.Qubits = append([]int(nil), g.Qubits...)
		out.ops = append(out.ops, cp)
	}
	return out, nil
}

// Inverse returns a new circuit that undoes c: the operation order is
// reversed and every gate is replaced by its inverse. The receiver is left
// untouched.
//
// Returns ErrNonInvertible if c contains a measurement.
func (c *Circuit) Inverse() (*Circuit, error) {
	out := &Circuit{
		name:   c.name,
		qubits: c.qubits,
		clbits: c.clbits,
		ops:    make([]Gate, 0, len(c.ops)),
	}
	if c.name != "" {
		out.name = c.name + "†"
	}
	for i := len(c.ops) - 1; i >= 0; i-- {
		inv, err := c.ops[i].inverse()
		if err != nil {
			return nil, fmt.Errorf("%w: operation %d (%s)", ErrNonInvertible, i, c.ops[i].Kind)
		}
		out.ops = append(out.ops, inv)
	}
	return out, nil
}
