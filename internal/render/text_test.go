package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

func TestTextLayout(t *testing.T) {
	b, err := board.FromString(
		"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
		domain.Standard,
	)
	require.NoError(t, err)

	out := Text(b, false)
	lines := strings.Split(out, "\n")
	// 1 top border + 9 cell rows + 8 separators + 1 bottom border.
	assert.Len(t, lines, 19)
	assert.Equal(t, "╔═══╤═══╤═══╦═══╤═══╤═══╦═══╤═══╤═══╗", lines[0])
	assert.Equal(t, "╚═══╧═══╧═══╩═══╧═══╧═══╩═══╧═══╧═══╝", lines[18])
	// First cell row: the two givens and an empty cell.
	assert.Equal(t, "║ 5 │ 3 │   ║   │ 7 │   ║   │   │   ║", lines[1])
}

func TestTextColorizesGivensOnly(t *testing.T) {
	var m [9][9]uint8
	m[0][0] = 5
	b, err := board.FromValues(m, domain.Standard)
	require.NoError(t, err)
	require.True(t, b.Write(3, 0, 1))

	plain := Text(b, false)
	assert.NotContains(t, plain, "\x1b[", "no escape codes without color")
	assert.Contains(t, plain, " 5 ")
	assert.Contains(t, plain, " 3 ")

	colored := Text(b, true)
	assert.Contains(t, colored, "\x1b[31m5\x1b[0m", "given is red")
	assert.NotContains(t, colored, "\x1b[31m3\x1b[0m", "written digit stays plain")
}
