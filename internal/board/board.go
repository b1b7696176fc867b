package board

import (
	"strings"

	"svw.info/sudokugen/internal/domain"
)

// Special cell values and dimensions.
const (
	EmptyCell = 0
	Size      = 9
	CellCount = 81
)

// Board is a 9×9 Sudoku grid. Cells holding a non-zero value at
// construction time become "given" and can never be overwritten for the
// life of the board. All other mutation goes through Write, which only
// succeeds for legal moves, so a Board never violates its variant's
// constraints.
type Board struct {
	values  [Size][Size]uint8
	given   [Size][Size]bool
	variant domain.Variant

	// Occupancy masks track placed digits per constraint region.
	// Bit i represents digit i+1. They are updated incrementally on
	// every mutation so legality checks never rescan the grid.
	rowMask  [Size]uint16
	colMask  [Size]uint16
	boxMask  [Size]uint16
	diagMask [2]uint16 // 0 = main diagonal, 1 = anti-diagonal

	// emptyCount tracks unfilled cells for O(1) IsSolved.
	emptyCount int
}

// New creates an empty board of the given variant. No cell is given.
func New(variant domain.Variant) *Board {
	return &Board{
		variant:    variant,
		emptyCount: CellCount,
	}
}

// FromValues creates a board from a 9×9 value matrix. Entries must be in
// 0–9; anything else fails with ErrInvalidBoardShape. Every non-zero cell
// becomes a given.
func FromValues(values [Size][Size]uint8, variant domain.Variant) (*Board, error) {
	b := New(variant)
	for r := range Size {
		for c := range Size {
			v := values[r][c]
			if v > 9 {
				return nil, errCellValue(int(v), r, c)
			}
			if v == EmptyCell {
				continue
			}
			b.place(r, c, v)
			b.given[r][c] = true
		}
	}
	return b, nil
}

// NewFromMatrix creates a board from an external integer matrix, which
// must be exactly 9×9 with entries in 0–9. Violations fail with
// ErrInvalidBoardShape.
func NewFromMatrix(matrix [][]int, variant domain.Variant) (*Board, error) {
	if len(matrix) != Size {
		return nil, errMatrixShape(len(matrix))
	}
	var values [Size][Size]uint8
	for r, row := range matrix {
		if len(row) != Size {
			return nil, errRowShape(r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return nil, errCellValue(v, r, c)
			}
			values[r][c] = uint8(v)
		}
	}
	return FromValues(values, variant)
}

// FromString creates a board from an 81-character string in row-major
// order. Use '.' or '0' for empty cells, '1'–'9' for givens.
func FromString(s string, variant domain.Variant) (*Board, error) {
	if len(s) != CellCount {
		return nil, errStringLength(len(s))
	}
	var values [Size][Size]uint8
	for i := range CellCount {
		switch ch := s[i]; ch {
		case '.', '0':
			// empty
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			values[i/Size][i%Size] = ch - '0'
		default:
			return nil, errStringChar(ch, i)
		}
	}
	return FromValues(values, variant)
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Variant returns the board's constraint rule set.
func (b *Board) Variant() domain.Variant {
	return b.variant
}

// Value returns the digit at (r, c), or EmptyCell.
func (b *Board) Value(r, c int) uint8 {
	return b.values[r][c]
}

// Given reports whether (r, c) is an immutable clue cell.
func (b *Board) Given(r, c int) bool {
	return b.given[r][c]
}

// IsLegal reports whether writing v at (r, c) would be accepted: the cell
// must not be given, and a non-zero v must not already occur in any of
// the cell's constraint regions. Writing EmptyCell (erase) is always
// legal on a non-given cell.
func (b *Board) IsLegal(v uint8, r, c int) bool {
	if r < 0 || r >= Size || c < 0 || c >= Size {
		return false
	}
	if b.given[r][c] {
		return false
	}
	if v == EmptyCell {
		return true
	}
	if v > 9 {
		return false
	}
	if b.values[r][c] == v {
		// Rewriting the cell's own value; its single occurrence is this cell.
		return true
	}
	mask := digitMask(v)
	for _, g := range b.variant.Groups(r, c) {
		if *b.unit(g)&mask != 0 {
			return false
		}
	}
	return true
}

// Write places v at (r, c) iff the move is legal and reports whether it
// did. An illegal move leaves the board untouched; this is the expected
// negative branch for the solver and generator, not an error.
func (b *Board) Write(v uint8, r, c int) bool {
	if !b.IsLegal(v, r, c) {
		return false
	}
	if cur := b.values[r][c]; cur != EmptyCell {
		b.remove(r, c, cur)
	}
	if v != EmptyCell {
		b.place(r, c, v)
	}
	return true
}

// Region returns a copy of the 3×3 box containing (r, c).
func (b *Board) Region(r, c int) [3][3]uint8 {
	var box [3][3]uint8
	br, bc := r-r%3, c-c%3
	for dr := range 3 {
		for dc := range 3 {
			box[dr][dc] = b.values[br+dr][bc+dc]
		}
	}
	return box
}

// IsSolved reports whether no cell holds EmptyCell.
func (b *Board) IsSolved() bool {
	return b.emptyCount == 0
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// ClueCount returns the number of filled cells.
func (b *Board) ClueCount() int {
	return CellCount - b.emptyCount
}

// Matrix returns a snapshot of the cell values.
func (b *Board) Matrix() [Size][Size]uint8 {
	return b.values
}

// GivenMask returns a snapshot of the given-cell membership.
func (b *Board) GivenMask() [Size][Size]bool {
	return b.given
}

// String returns the board as an 81-character string, empty cells as '.'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for r := range Size {
		for c := range Size {
			if v := b.values[r][c]; v == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// place records v at (r, c) and sets its bit in every region mask.
// The cell must be empty and the move legal.
func (b *Board) place(r, c int, v uint8) {
	b.values[r][c] = v
	mask := digitMask(v)
	for _, g := range b.variant.Groups(r, c) {
		*b.unit(g) |= mask
	}
	b.emptyCount--
}

// remove erases (r, c) and clears its bits.
func (b *Board) remove(r, c int, v uint8) {
	b.values[r][c] = EmptyCell
	mask := digitMask(v)
	for _, g := range b.variant.Groups(r, c) {
		*b.unit(g) &^= mask
	}
	b.emptyCount++
}

// unit resolves a constraint group to its occupancy mask.
func (b *Board) unit(g domain.Group) *uint16 {
	switch g.Kind {
	case domain.GroupRow:
		return &b.rowMask[g.Index]
	case domain.GroupColumn:
		return &b.colMask[g.Index]
	case domain.GroupBox:
		return &b.boxMask[g.Index]
	case domain.GroupMainDiagonal:
		return &b.diagMask[0]
	default:
		return &b.diagMask[1]
	}
}

func digitMask(v uint8) uint16 {
	return 1 << (v - 1)
}
