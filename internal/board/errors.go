package board

import (
	"errors"
	"fmt"
)

// ErrInvalidBoardShape indicates construction input that is not a 9×9
// matrix of integers in 0–9.
var ErrInvalidBoardShape = errors.New("board: input must be a 9x9 matrix of values 0-9")

func errMatrixShape(rows int) error {
	return fmt.Errorf("%w: got %d rows", ErrInvalidBoardShape, rows)
}

func errRowShape(row, cols int) error {
	return fmt.Errorf("%w: row %d has %d columns", ErrInvalidBoardShape, row, cols)
}

func errCellValue(v, r, c int) error {
	return fmt.Errorf("%w: value %d at (%d,%d) out of range", ErrInvalidBoardShape, v, r, c)
}

func errStringLength(n int) error {
	return fmt.Errorf("%w: string must be exactly %d characters, got %d", ErrInvalidBoardShape, CellCount, n)
}

func errStringChar(ch byte, pos int) error {
	return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidBoardShape, ch, pos)
}
