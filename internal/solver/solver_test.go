package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/validator"
)

// A classic, uniquely solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

const sampleSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestIterativeSolveSample(t *testing.T) {
	in, err := board.FromValues(sample, domain.Standard)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, st, err := NewBacktrackingSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !out.IsSolved() {
		t.Fatal("solver reported success on an unsolved board")
	}
	if got := out.String(); got != sampleSolution {
		t.Fatalf("unexpected solution:\n got %s\nwant %s", got, sampleSolution)
	}
	// Input must be untouched.
	if in.Value(0, 2) != board.EmptyCell {
		t.Fatal("Solve mutated its input")
	}
	ok, conf, err := validator.New().Validate(ctx, out.Matrix(), domain.Standard)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestRecursiveMatchesIterative(t *testing.T) {
	in, err := board.FromValues(sample, domain.Standard)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	ctx := context.Background()

	iter, _, err := NewBacktrackingSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("iterative Solve: %v", err)
	}
	rec, _, err := NewRecursiveSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("recursive Solve: %v", err)
	}
	if iter.String() != rec.String() {
		t.Fatalf("strategies disagree:\niter %s\nrec  %s", iter, rec)
	}
}

// TestSolveForcedCell blanks a single cell of a full grid; the solver
// must restore exactly the eliminated value.
func TestSolveForcedCell(t *testing.T) {
	full, err := board.FromString(sampleSolution, domain.Standard)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	want := full.Value(4, 4)
	m := full.Matrix()
	m[4][4] = board.EmptyCell
	in, err := board.FromValues(m, domain.Standard)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}

	out, _, err := NewBacktrackingSolver().Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !out.IsSolved() {
		t.Fatal("board not solved")
	}
	if got := out.Value(4, 4); got != want {
		t.Fatalf("filled %d, want %d", got, want)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	full, err := board.FromString(sampleSolution, domain.Standard)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	out, st, err := NewBacktrackingSolver().Solve(context.Background(), full)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if st.Nodes != 0 {
		t.Fatalf("expected no search on a solved board, got %d nodes", st.Nodes)
	}
	if out.String() != sampleSolution {
		t.Fatal("solved board changed")
	}
}

// TestSolveUnsolvable leaves one empty cell with no legal candidate, so
// the cursor must retreat past the grid start and report the failure.
func TestSolveUnsolvable(t *testing.T) {
	full, err := board.FromString(sampleSolution, domain.Standard)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	m := full.Matrix()
	blocked := m[0][0]
	m[0][0] = board.EmptyCell
	m[2][0] = blocked // column 0 now blocks the only fitting digit

	in, err := board.FromValues(m, domain.Standard)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	for name, s := range map[string]*BacktrackingSolver{
		"iterative": NewBacktrackingSolver(),
		"recursive": NewRecursiveSolver(),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.Solve(context.Background(), in)
			if !errors.Is(err, ErrUnsolvable) {
				t.Fatalf("err = %v, want ErrUnsolvable", err)
			}
		})
	}
}

func TestSolveEmptyDiagonal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, _, err := NewBacktrackingSolver().Solve(ctx, board.New(domain.Diagonal))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	ok, conf, err := validator.New().Validate(ctx, out.Matrix(), domain.Diagonal)
	if err != nil || !ok {
		t.Fatalf("invalid diagonal solution: err=%v conflicts=%v", err, conf)
	}
}

func TestSolveContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktrackingSolver().Solve(ctx, board.New(domain.Standard))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestUnique(t *testing.T) {
	in, err := board.FromValues(sample, domain.Standard)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	unique, _, err := NewBacktrackingSolver().Unique(context.Background(), in)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if !unique {
		t.Fatal("classic sample should have exactly one solution")
	}

	unique, _, err = NewBacktrackingSolver().Unique(context.Background(), board.New(domain.Standard))
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if unique {
		t.Fatal("an empty board has many solutions")
	}
}
