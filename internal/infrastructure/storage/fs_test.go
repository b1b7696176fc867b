package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
)

func samplePuzzle(id string, v domain.Variant) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:        id,
		Seed:      42,
		Variant:   v,
		Hints:     2,
		CreatedAt: 1700000000,
		Name:      "test puzzle",
	}
	p.Values[0][0] = 5
	p.Values[8][8] = 9
	p.Given[0][0] = true
	p.Given[8][8] = true
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	want := samplePuzzle("abc", domain.Diagonal)
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestListAcrossVariants(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, samplePuzzle("std", domain.Standard)))
	require.NoError(t, s.Save(ctx, samplePuzzle("diag", domain.Diagonal)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	byID := map[string]domain.PuzzleMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	assert.Equal(t, domain.Standard, byID["std"].Variant)
	assert.Equal(t, domain.Diagonal, byID["diag"].Variant)
	assert.Equal(t, "test puzzle", byID["std"].Name)
	assert.Equal(t, 2, byID["std"].Hints)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
