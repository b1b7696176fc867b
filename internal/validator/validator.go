package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// FastValidator scans a raw value matrix for duplicate digits per
// constraint region. Empty cells are ignored. Unlike board legality
// checks this is a whole-board sweep, used to audit externally supplied
// grids and finished solutions.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, values [9][9]uint8, variant domain.Variant) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			m, conf = mark(m, values[r][c], r, c, conf)
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m, conf = mark(m, values[r][c], r, c, conf)
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					m, conf = mark(m, values[r][c], r, c, conf)
				}
			}
		}
	}
	if variant == domain.Diagonal {
		main, anti := 0, 0
		for i := 0; i < 9; i++ {
			main, conf = mark(main, values[i][i], i, i, conf)
			anti, conf = mark(anti, values[i][8-i], i, 8-i, conf)
		}
	}
	return len(conf) == 0, conf, nil
}

// mark records val in the bitmask m, appending a conflict for repeats.
func mark(m int, val uint8, r, c int, conf []domain.CellCoord) (int, []domain.CellCoord) {
	if val == 0 {
		return m, conf
	}
	bit := 1 << val
	if m&bit != 0 {
		conf = append(conf, domain.CellCoord{Row: r, Col: c})
	}
	return m | bit, conf
}
