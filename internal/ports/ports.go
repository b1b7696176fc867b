package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (*board.Board, Stats, error)
	Unique(ctx context.Context, b *board.Board) (bool, Stats, error)
}

// Generator creates new puzzles with a target number of clues.
type Generator interface {
	Generate(ctx context.Context, seed int64, hints int, variant domain.Variant) (*domain.Puzzle, Stats, error)
}

// Validator performs a full-board constraint check.
type Validator interface {
	Validate(ctx context.Context, values [9][9]uint8, variant domain.Variant) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced placement, if one exists.
type Hinter interface {
	Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
