package sim

import (
	"errors"
	"fmt"
)

// ErrExecution is the base sentinel for every backend rejection; all other
// execution errors wrap it, so errors.Is(err, ErrExecution) catches any
// failure surfaced by this package.
var ErrExecution = errors.New("sim: circuit execution failed")

// ErrInvalidShots indicates a non-positive shot count.
var ErrInvalidShots = fmt.Errorf("%w: shot count must be positive", ErrExecution)

// ErrTooWide indicates the circuit exceeds the simulable qubit limit
// (the state vector needs 2^qubits amplitudes).
var ErrTooWide = fmt.Errorf("%w: circuit exceeds simulable width", ErrExecution)
