package circuit

import (
	"fmt"
	"strings"
)

// cell width of one drawn column, in runes.
const drawCell = 5

// Draw renders the circuit as a plain-text wire diagram: one row per qubit,
// one column per operation, in program order. Two-qubit gates show a filled
// control dot connected vertically to their target; barriers shade a full
// column. Intended for console inspection only — richer visualizations are
// a reporting concern outside this package.
//
// Example output for H(0); CX(0,1); Measure(0,0):
//
//	q0: ──H────■────M──
//	            │
//	q1: ───────⊕───────
func (c *Circuit) Draw() string {
	rows := make([][]string, c.qubits)
	// links[col] marks qubit rows that need a vertical connector drawn
	// between them in the given column.
	links := make([]int, 0, len(c.ops))
	linkSpan := make(map[int][2]int, len(c.ops))

	for col, g := range c.ops {
		for q := 0; q < c.qubits; q++ {
			rows[q] = append(rows[q], wire())
		}
		switch {
		case g.Kind == KindBarrier:
			for q := 0; q < c.qubits; q++ {
				rows[q][col] = center("░")
			}
		case g.Kind == KindMeasure:
			rows[g.Qubits[0]][col] = center("M")
		case g.Kind.Arity() == 2:
			a, b := g.Qubits[0], g.Qubits[1]
			switch g.Kind {
			case KindCX:
				rows[a][col] = center("■")
				rows[b][col] = center("⊕")
			case KindCZ:
				rows[a][col] = center("■")
				rows[b][col] = center("■")
			case KindSWAP:
				rows[a][col] = center("╳")
				rows[b][col] = center("╳")
			}
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			for q := lo + 1; q < hi; q++ {
				rows[q][col] = center("┼")
			}
			links = append(links, col)
			linkSpan[col] = [2]int{lo, hi}
		default:
			rows[g.Qubits[0]][col] = center(gateLabel(g))
		}
	}

	var sb strings.Builder
	if c.name != "" {
		fmt.Fprintf(&sb, "%s (%d qubits, %d clbits)\n", c.name, c.qubits, c.clbits)
	}
	for q := 0; q < c.qubits; q++ {
		fmt.Fprintf(&sb, "q%d: %s\n", q, strings.Join(rows[q], ""))
		// Vertical connectors between this qubit row and the next.
		if q == c.qubits-1 {
			continue
		}
		gap := make([]string, len(c.ops))
		needed := false
		for i := range gap {
			gap[i] = strings.Repeat(" ", drawCell)
		}
		for _, col := range links {
			span := linkSpan[col]
			if q >= span[0] && q < span[1] {
				gap[col] = strings.Repeat(" ", drawCell/2) + "│" + strings.Repeat(" ", drawCell-drawCell/2-1)
				needed = true
			}
		}
		if needed {
			fmt.Fprintf(&sb, "    %s\n", strings.Join(gap, ""))
		}
	}
	return sb.String()
}

// gateLabel returns the short upper-case label drawn for a single-qubit gate.
func gateLabel(g Gate) string {
	return strings.ToUpper(string(g.Kind))
}

// wire returns an empty stretch of quantum wire.
func wire() string { return strings.Repeat("─", drawCell) }

// center pads label to the draw cell width with wire characters.
func center(label string) string {
	n := len([]rune(label))
	if n >= drawCell {
		return label
	}
	left := (drawCell - n) / 2
	right := drawCell - n - left
	return strings.Repeat("─", left) + label + strings.Repeat("─", right)
}
