package solver

import (
	"errors"

	"svw.info/sudokugen/internal/board"
)

// ErrUnsolvable indicates the search exhausted every candidate: the
// cursor would have to retreat past the first non-given cell.
var ErrUnsolvable = errors.New("solver: board has no solution")

// errDepthExceeded guards the recursive strategy against pathological
// inputs; the search never legitimately nests deeper than the number of
// non-given cells plus one.
var errDepthExceeded = errors.New("solver: recursion depth exceeded")

// Strategy selects how the backtracking search is driven.
type Strategy int

const (
	// Iterative runs the cursor loop without recursion and is the default.
	Iterative Strategy = iota
	// Recursive is an equivalent depth-bounded formulation.
	Recursive
)

const maxRecursionDepth = 256

// BacktrackingSolver is an exhaustive cursor-driven search over the
// non-given cells of a board, trying candidates in ascending value order
// at ascending positions. It finds the first completion under that
// deterministic order, with no notion of uniqueness.
type BacktrackingSolver struct {
	strategy Strategy
}

// NewBacktrackingSolver returns an iterative solver.
func NewBacktrackingSolver() *BacktrackingSolver {
	return &BacktrackingSolver{strategy: Iterative}
}

// NewRecursiveSolver returns a solver using the recursive strategy.
// The search order, and therefore the solution found, is identical to
// the iterative form.
func NewRecursiveSolver() *BacktrackingSolver {
	return &BacktrackingSolver{strategy: Recursive}
}

// cursor is a transient traversal position; it is never persisted.
type cursor struct {
	row, col int
}

// advance moves the cursor one step in row-major order (dir = +1) or
// back (dir = -1), skipping given cells in the travel direction. The
// second return is false once the cursor leaves the grid.
func advance(b *board.Board, cur cursor, dir int) (cursor, bool) {
	for {
		if dir > 0 {
			cur.col++
			if cur.col == board.Size {
				cur.col = 0
				cur.row++
			}
		} else {
			cur.col--
			if cur.col < 0 {
				cur.col = board.Size - 1
				cur.row--
			}
		}
		if cur.row < 0 || cur.row >= board.Size {
			return cursor{}, false
		}
		if !b.Given(cur.row, cur.col) {
			return cur, true
		}
	}
}

// startCursor returns the first non-given cell in row-major order.
// ok is false when every cell is given.
func startCursor(b *board.Board) (cursor, bool) {
	if !b.Given(0, 0) {
		return cursor{}, true
	}
	return advance(b, cursor{}, +1)
}
