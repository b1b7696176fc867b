package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/ports"
)

// Solve searches for a completion of b and returns it as a new board;
// the input is never mutated. An exhausted search fails with
// ErrUnsolvable.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *board.Board) (*board.Board, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	st := ports.Stats{}

	var err error
	if s.strategy == Recursive {
		err = solveRecursive(ctx, work, &st)
	} else {
		err = solveIterative(ctx, work, &st)
	}
	st.Duration = time.Since(start)
	if err != nil {
		return nil, st, err
	}
	return work, st, nil
}

// solveIterative is the cursor loop: write the trial value, advance and
// reset the trial on success, bump the trial on failure, and on an
// exhausted cell erase it, retreat, and resume from the predecessor's
// current value plus one.
func solveIterative(ctx context.Context, b *board.Board, st *ports.Stats) error {
	if b.IsSolved() {
		return nil
	}
	cur, ok := startCursor(b)
	if !ok {
		return ErrUnsolvable
	}
	trial := uint8(1)
	for !b.IsSolved() {
		if err := ctx.Err(); err != nil {
			return err
		}
		st.Nodes++
		if b.Write(trial, cur.row, cur.col) {
			next, ok := advance(b, cur, +1)
			if !ok {
				break // wrote the last cell
			}
			cur, trial = next, 1
			continue
		}
		if trial < 9 {
			trial++
			continue
		}
		// All nine candidates failed here: backtrack.
		b.Write(board.EmptyCell, cur.row, cur.col)
		prev, ok := advance(b, cur, -1)
		if !ok {
			return ErrUnsolvable
		}
		cur = prev
		trial = b.Value(prev.row, prev.col) + 1
	}
	if !b.IsSolved() {
		return ErrUnsolvable
	}
	return nil
}

// solveRecursive nests one call per non-given cell and tries the nine
// candidates in a loop, which keeps the depth bounded by the cell count.
func solveRecursive(ctx context.Context, b *board.Board, st *ports.Stats) error {
	if b.IsSolved() {
		return nil
	}
	cur, ok := startCursor(b)
	if !ok {
		return ErrUnsolvable
	}
	solved, err := recurse(ctx, b, cur, st, 0)
	if err != nil {
		return err
	}
	if !solved {
		return ErrUnsolvable
	}
	return nil
}

func recurse(ctx context.Context, b *board.Board, cur cursor, st *ports.Stats, depth int) (bool, error) {
	if depth > maxRecursionDepth {
		return false, errDepthExceeded
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for v := uint8(1); v <= 9; v++ {
		st.Nodes++
		if !b.Write(v, cur.row, cur.col) {
			continue
		}
		next, ok := advance(b, cur, +1)
		if !ok {
			return true, nil // filled the last cell
		}
		solved, err := recurse(ctx, b, next, st, depth+1)
		if err != nil {
			return false, err
		}
		if solved {
			return true, nil
		}
		b.Write(board.EmptyCell, cur.row, cur.col)
	}
	b.Write(board.EmptyCell, cur.row, cur.col)
	return false, nil
}
