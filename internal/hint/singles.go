package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles:
// empty cells with exactly one legal candidate under the board's
// variant rules.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single in row-major order.
func (h *Singles) Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Value(r, c) != board.EmptyCell {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if !ok {
				continue
			}
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", v),
				Cells:   []domain.CellCoord{{Row: r, Col: c}},
				Value:   v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *board.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if b.IsLegal(v, r, c) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
