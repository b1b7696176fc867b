package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
)

// Generate creates a puzzle with the requested number of hints. The same
// seed always yields the same puzzle, so generation is reproducible.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, hints int, variant domain.Variant) (*domain.Puzzle, ports.Stats, error) {
	rng := rand.New(rand.NewSource(seed))
	b, st, err := g.CreateRandomPuzzle(ctx, rng, hints, variant)
	if err != nil {
		return nil, st, err
	}
	p := &domain.Puzzle{
		Seed:      seed,
		Variant:   variant,
		Hints:     hints,
		Values:    b.Matrix(),
		Given:     b.GivenMask(),
		CreatedAt: time.Now().UnixNano(),
	}
	return p, st, nil
}

// CreateRandomPuzzle seeds a sparse board, solves it, removes cells down
// to hints clues, and freezes the remainder as the new given set.
// hints must lie in [0, 81].
func (g *RandomGenerator) CreateRandomPuzzle(ctx context.Context, rng *rand.Rand, hints int, variant domain.Variant) (*board.Board, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	if hints < 0 || hints > board.CellCount {
		return nil, st, errHints(hints)
	}

	solved, err := g.solveSeed(ctx, rng, variant, &st)
	if err != nil {
		st.Duration = time.Since(start)
		return nil, st, err
	}

	b, err := g.removeCells(ctx, rng, solved, hints)
	if err != nil {
		st.Duration = time.Since(start)
		return nil, st, err
	}
	st.Duration = time.Since(start)
	return b, st, nil
}

// solveSeed completes a freshly seeded board. A seed placement can leave
// a diagonal board without a completion, so an unsolvable seed is simply
// discarded and redrawn.
func (g *RandomGenerator) solveSeed(ctx context.Context, rng *rand.Rand, variant domain.Variant, st *ports.Stats) (*board.Board, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seeded, err := g.seedBoard(rng, variant)
		if err != nil {
			return nil, err
		}
		solved, sst, err := g.Solver.Solve(ctx, seeded)
		st.Nodes += sst.Nodes
		if errors.Is(err, solver.ErrUnsolvable) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return solved, nil
	}
}

// seedBoard shuffles 1–9, drops one value, and places the remaining 8
// distinct values at uniformly random empty cells. Distinct values can
// never conflict, so every non-zero cell becomes a given fixed point for
// the solve step.
func (g *RandomGenerator) seedBoard(rng *rand.Rand, variant domain.Variant) (*board.Board, error) {
	var values [board.Size][board.Size]uint8
	perm := rng.Perm(board.Size)
	for _, n := range perm[:board.Size-1] {
		for {
			r, c := rng.Intn(board.Size), rng.Intn(board.Size)
			if values[r][c] == board.EmptyCell {
				values[r][c] = uint8(n + 1)
				break
			}
		}
	}
	return board.FromValues(values, variant)
}

// removeCells clears random cells of the solved board until hints clues
// remain, then reconstructs so those clues freeze as the given set.
// The working copy has no given cells, so every draw of a non-empty cell
// succeeds and the loop performs exactly 81-hints removals.
func (g *RandomGenerator) removeCells(ctx context.Context, rng *rand.Rand, solved *board.Board, hints int) (*board.Board, error) {
	work := board.New(solved.Variant())
	m := solved.Matrix()
	for r := range board.Size {
		for c := range board.Size {
			work.Write(m[r][c], r, c)
		}
	}

	remaining := board.CellCount - hints
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, c := rng.Intn(board.Size), rng.Intn(board.Size)
		if work.Value(r, c) == board.EmptyCell {
			continue
		}
		if work.Write(board.EmptyCell, r, c) {
			remaining--
		}
	}
	return board.FromValues(work.Matrix(), solved.Variant())
}
