package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
)

const solvedGrid = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func solvedValues(t *testing.T) [9][9]uint8 {
	t.Helper()
	b, err := board.FromString(solvedGrid, domain.Standard)
	require.NoError(t, err)
	return b.Matrix()
}

func TestValidateSolvedGrid(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), solvedValues(t), domain.Standard)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateRowConflict(t *testing.T) {
	values := solvedValues(t)
	values[0][1] = values[0][0]
	ok, conf, err := New().Validate(context.Background(), values, domain.Standard)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	var values [9][9]uint8
	values[0][0] = 5
	ok, conf, err := New().Validate(context.Background(), values, domain.Standard)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

// A repeated digit on the main diagonal, clean everywhere else, is a
// conflict only under the diagonal variant.
func TestValidateDiagonalConflict(t *testing.T) {
	var values [9][9]uint8
	values[0][0] = 6
	values[4][4] = 6

	ok, conf, err := New().Validate(context.Background(), values, domain.Standard)
	require.NoError(t, err)
	assert.True(t, ok, "standard variant must accept: %v", conf)

	ok, conf, err = New().Validate(context.Background(), values, domain.Diagonal)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 4, Col: 4})
}

func TestValidateAntiDiagonalConflict(t *testing.T) {
	var values [9][9]uint8
	values[8][0] = 3
	values[0][8] = 3

	ok, _, err := New().Validate(context.Background(), values, domain.Standard)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, conf, err := New().Validate(context.Background(), values, domain.Diagonal)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}
