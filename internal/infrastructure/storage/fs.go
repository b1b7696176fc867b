package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudokugen/internal/domain"
)

// FS persists puzzles as JSON files under dir, bucketed by variant.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, v domain.Variant) string {
	return filepath.Join(s.dir, v.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("storage: invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Variant)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	candidates := []string{
		filepath.Join(s.dir, domain.Standard.String(), id+".json"),
		filepath.Join(s.dir, domain.Diagonal.String(), id+".json"),
		filepath.Join(s.dir, id+".json"), // legacy flat layout
	}
	var data []byte
	for _, path := range candidates {
		b, err := os.ReadFile(path)
		if err == nil {
			data = b
			break
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	buckets := []string{
		filepath.Join(s.dir, domain.Standard.String()),
		filepath.Join(s.dir, domain.Diagonal.String()),
		s.dir, // legacy flat files
	}
	for _, bucket := range buckets {
		ents, err := os.ReadDir(bucket)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(bucket, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Variant:   p.Variant,
				Hints:     p.Hints,
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}
