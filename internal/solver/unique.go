package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/ports"
)

// Unique counts completions up to 2 and reports whether exactly one
// exists. The generator deliberately does not consult this: generated
// puzzles are guaranteed solvable, not unique.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	st := ports.Stats{}
	count := 0

	if work.IsSolved() {
		count = 1
	} else if cur, ok := startCursor(work); ok {
		countCompletions(ctx, work, cur, &st, &count)
	}
	st.Duration = time.Since(start)
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}

// countCompletions explores like recurse but keeps going after the first
// completion, stopping early at two.
func countCompletions(ctx context.Context, b *board.Board, cur cursor, st *ports.Stats, count *int) {
	if ctx.Err() != nil || *count >= 2 {
		return
	}
	for v := uint8(1); v <= 9; v++ {
		st.Nodes++
		if !b.Write(v, cur.row, cur.col) {
			continue
		}
		if next, ok := advance(b, cur, +1); ok {
			countCompletions(ctx, b, next, st, count)
		} else {
			*count++
		}
		b.Write(board.EmptyCell, cur.row, cur.col)
		if *count >= 2 {
			return
		}
	}
}
