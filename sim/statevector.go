package sim

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/vtu23158/QML-LAB/circuit"
)

// state is a dense complex128 state vector over n qubits. Basis index bit
// q corresponds to qubit q, so amplitude amps[i] belongs to the basis
// state whose qubit q reads (i >> q) & 1.
type state struct {
	amps   []complex128
	qubits int
}

// newState returns |0…0⟩ over n qubits.
func newState(n int) *state {
	s := &state{amps: make([]complex128, 1<<n), qubits: n}
	s.amps[0] = 1
	return s
}

// apply evolves the state by one unitary gate. Measurements and barriers
// are handled by the caller, never passed here.
func (s *state) apply(g circuit.Gate) {
	switch g.Kind {
	case circuit.KindH:
		s.hadamard(g.Qubits[0])
	case circuit.KindX:
		s.pauliX(g.Qubits[0])
	case circuit.KindY:
		s.pauliY(g.Qubits[0])
	case circuit.KindZ:
		s.pauliZ(g.Qubits[0])
	case circuit.KindS:
		s.phase(g.Qubits[0], 1i)
	case circuit.KindSdg:
		s.phase(g.Qubits[0], -1i)
	case circuit.KindT:
		s.phase(g.Qubits[0], cmplx.Exp(complex(0, math.Pi/4)))
	case circuit.KindTdg:
		s.phase(g.Qubits[0], cmplx.Exp(complex(0, -math.Pi/4)))
	case circuit.KindRX:
		s.rotX(g.Qubits[0], g.Theta)
	case circuit.KindRY:
		s.rotY(g.Qubits[0], g.Theta)
	case circuit.KindRZ:
		s.rotZ(g.Qubits[0], g.Theta)
	case circuit.KindCX:
		s.controlledX(g.Qubits[0], g.Qubits[1])
	case circuit.KindCZ:
		s.controlledZ(g.Qubits[0], g.Qubits[1])
	case circuit.KindSWAP:
		s.swap(g.Qubits[0], g.Qubits[1])
	}
}

// hadamard maps |0⟩ → (|0⟩+|1⟩)/√2, |1⟩ → (|0⟩−|1⟩)/√2 on qubit q.
func (s *state) hadamard(q int) {
	inv := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = inv * (a + b)
			s.amps[j] = inv * (a - b)
		}
	}
}

func (s *state) pauliX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// pauliY applies [[0, −i], [i, 0]] on qubit q.
func (s *state) pauliY(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = -1i*s.amps[j], 1i*s.amps[i]
		}
	}
}

func (s *state) pauliZ(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// phase multiplies the |1⟩ component of qubit q by factor (S, S†, T, T†).
func (s *state) phase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

// rotX applies cos(θ/2)·I − i·sin(θ/2)·X on qubit q.
func (s *state) rotX(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = c*a + js*b
			s.amps[j] = js*a + c*b
		}
	}
}

// rotY applies cos(θ/2)·I − i·sin(θ/2)·Y on qubit q.
func (s *state) rotY(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = c*a - sn*b
			s.amps[j] = sn*a + c*b
		}
	}
}

// rotZ applies diag(e^{−iθ/2}, e^{+iθ/2}) on qubit q.
func (s *state) rotZ(q int, theta float64) {
	pos := cmplx.Exp(complex(0, theta/2))
	neg := cmplx.Conj(pos)
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= pos
		} else {
			s.amps[i] *= neg
		}
	}
}

func (s *state) controlledX(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *state) controlledZ(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

func (s *state) swap(a, b int) {
	aBit, bBit := 1<<a, 1<<b
	for i := range s.amps {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// probabilityOne returns P(qubit q measures 1).
func (s *state) probabilityOne(q int) float64 {
	bit := 1 << q
	p := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p
}

// measure samples qubit q in the computational basis, collapses the state
// and renormalizes. Returns the observed bit.
func (s *state) measure(q int, rng *rand.Rand) int {
	p1 := s.probabilityOne(q)
	bit := 1 << q

	outcome := 0
	keep := 1 - p1
	if rng.Float64() < p1 {
		outcome = 1
		keep = p1
	}
	norm := complex(1/math.Sqrt(keep), 0)

	for i := range s.amps {
		observed := 0
		if i&bit != 0 {
			observed = 1
		}
		if observed == outcome {
			s.amps[i] *= norm
		} else {
			s.amps[i] = 0
		}
	}
	return outcome
}

// injectError applies a uniformly random non-identity Pauli (tensor) on the
// gate's operand qubits: one of {X, Y, Z} for a single operand, one of the
// 15 non-identity pairs for two. Grounded in the depolarizing channel's
// stochastic unraveling; the caller has already decided the error fires.
func (s *state) injectError(operands []int, rng *rand.Rand) {
	switch len(operands) {
	case 1:
		s.applyPauli(operands[0], 1+rng.IntN(3))
	case 2:
		idx := 1 + rng.IntN(15) // base-4 digits (a, b), never (0, 0)
		s.applyPauli(operands[0], idx&3)
		s.applyPauli(operands[1], idx>>2)
	}
}

// applyPauli applies I/X/Y/Z (0..3) on qubit q.
func (s *state) applyPauli(q, pauli int) {
	switch pauli {
	case 1:
		s.pauliX(q)
	case 2:
		s.pauliY(q)
	case 3:
		s.pauliZ(q)
	}
}
