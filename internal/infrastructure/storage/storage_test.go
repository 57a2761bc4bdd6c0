package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

func backends(t *testing.T) map[string]ports.Storage {
	t.Helper()
	sq, err := NewSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { sq.Close() })
	return map[string]ports.Storage{
		"fs":     NewFS(t.TempDir()),
		"sqlite": sq,
	}
}

func samplePuzzle(id string) *domain.Puzzle {
	board := domain.Board{}
	board.Values[0] = [9]uint8{0, 7, 3, 8, 9, 4, 5, 1, 2}
	solution := board.Clone()
	solution.Values[0][0] = 6
	return &domain.Puzzle{
		ID:         id,
		Name:       "morning warmup",
		Difficulty: "easy",
		Board:      board,
		Solution:   solution,
		CreatedAt:  1700000000,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := samplePuzzle("p1")
			if err := st.Save(ctx, in); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			out, err := st.Load(ctx, "p1")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if out.ID != in.ID || out.Name != in.Name || out.Difficulty != in.Difficulty || out.CreatedAt != in.CreatedAt {
				t.Fatalf("metadata mismatch: got %+v", out)
			}
			if out.Board.Values != in.Board.Values {
				t.Fatal("board values changed in roundtrip")
			}
			if out.Solution == nil || out.Solution.Values != in.Solution.Values {
				t.Fatal("solution changed in roundtrip")
			}
		})
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Save(context.Background(), samplePuzzle("")); err == nil {
				t.Fatal("Save accepted a puzzle without an ID")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("Load(missing) error = %v, want ErrNotExist", err)
			}
		})
	}
}

func TestList(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if got, err := st.List(ctx); err != nil || len(got) != 0 {
				t.Fatalf("empty List = %v, %v", got, err)
			}
			for _, id := range []string{"a", "b"} {
				if err := st.Save(ctx, samplePuzzle(id)); err != nil {
					t.Fatalf("Save(%s) failed: %v", id, err)
				}
			}
			got, err := st.List(ctx)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("List returned %d entries, want 2", len(got))
			}
			seen := map[string]bool{}
			for _, m := range got {
				seen[m.ID] = true
				if m.Name != "morning warmup" || m.Difficulty != "easy" {
					t.Fatalf("bad listing entry: %+v", m)
				}
			}
			if !seen["a"] || !seen["b"] {
				t.Fatalf("List missing ids: %v", seen)
			}
		})
	}
}
