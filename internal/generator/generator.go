package generator

import (
	"errors"
	"fmt"

	"svw.info/sudokugen/internal/ports"
)

// ErrInvalidHintCount indicates a requested clue count outside [0, 81].
// Counts below 17 are accepted: the generator guarantees a solvable
// puzzle, not a proper or uniquely-solvable one.
var ErrInvalidHintCount = errors.New("generator: hint count must be between 0 and 81")

// RandomGenerator creates solvable puzzles by seeding a sparse board,
// solving it to completion, then clearing cells down to the requested
// number of hints.
type RandomGenerator struct {
	Solver ports.Solver
}

// NewRandomGenerator wires a generator that completes its seed boards
// with the given solver.
func NewRandomGenerator(s ports.Solver) *RandomGenerator {
	return &RandomGenerator{Solver: s}
}

func errHints(hints int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidHintCount, hints)
}
