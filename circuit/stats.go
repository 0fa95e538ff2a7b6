package circuit

// Statistics over a circuit's operation list. Barriers are directives, not
// operations: Size and Depth ignore them (Depth still honors them as
// reordering fences), and BarrierCount reports them separately.

// Width returns the number of qubits the circuit spans.
func (c *Circuit) Width() int { return c.qubits }

// Size returns the total number of operations, excluding barriers.
func (c *Circuit) Size() int {
	n := 0
	for _, g := range c.ops {
		if g.Kind != KindBarrier {
			n++
		}
	}
	return n
}

// BarrierCount returns the number of barrier directives in the circuit.
func (c *Circuit) BarrierCount() int {
	n := 0
	for _, g := range c.ops {
		if g.Kind == KindBarrier {
			n++
		}
	}
	return n
}

// CountOps returns a per-kind operation tally, barriers included.
func (c *Circuit) CountOps() map[Kind]int {
	out := make(map[Kind]int, 8)
	for _, g := range c.ops {
		out[g.Kind]++
	}
	return out
}

// Depth returns the length of the longest dependency chain through the
// circuit: two operations are dependent when they share a qubit or a
// classical bit. Barriers contribute no length of their own but align the
// chains of every qubit they fence.
//
// Complexity: O(len(c) · arity), Memory: O(qubits + clbits).
func (c *Circuit) Depth() int {
	// fronts[i] is the chain length already accumulated on wire i;
	// qubit wires first, then classical wires.
	fronts := make([]int, c.qubits+c.clbits)
	depth := 0
	for _, g := range c.ops {
		if g.Kind == KindBarrier {
			// Fence: align every qubit wire to the deepest one.
			level := 0
			for q := 0; q < c.qubits; q++ {
				if fronts[q] > level {
					level = fronts[q]
				}
			}
			for q := 0; q < c.qubits; q++ {
				fronts[q] = level
			}
			continue
		}
		level := 0
		for _, q := range g.Qubits {
			if fronts[q] > level {
				level = fronts[q]
			}
		}
		if g.Kind == KindMeasure {
			if cl := c.qubits + g.Clbit; fronts[cl] > level {
				level = fronts[cl]
			}
		}
		level++
		for _, q := range g.Qubits {
			fronts[q] = level
		}
		if g.Kind == KindMeasure {
			fronts[c.qubits+g.Clbit] = level
		}
		if level > depth {
			depth = level
		}
	}
	return depth
}
