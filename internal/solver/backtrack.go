package solver

import (
	"sync"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Backtracker solves a single puzzle by iterative depth-first search over its
// blank cells in row-major order. The search order is fixed at construction;
// no candidate-count heuristics reorder it, so the solution for a given
// puzzle is deterministic (the lexicographically first completion).
type Backtracker struct {
	board    domain.Board
	unsolved []domain.CellCoord

	mu     sync.Mutex
	cached *domain.Board // first successful result, returned by copy
}

// NewBacktracker validates the starting position and captures a copy of it.
// A board with a duplicate non-zero value in any row, column, or nonet is
// rejected with ErrInvalidPuzzle. The input board is never mutated.
func NewBacktracker(b *domain.Board) (*Backtracker, error) {
	if b == nil || !b.Valid() {
		return nil, domain.ErrInvalidPuzzle
	}
	return &Backtracker{
		board:    *b,
		unsolved: b.UnsolvedSpaces(),
	}, nil
}

// Board returns a copy of the starting position.
func (s *Backtracker) Board() *domain.Board {
	return s.board.Clone()
}

// PercentSolved reports how much of the grid the starting position fills.
func (s *Backtracker) PercentSolved() float64 {
	return (1 - float64(len(s.unsolved))/float64(domain.Cells)) * 100
}

// Solve runs the backtracking search and returns the completed board.
//
// Each blank cell is a decision point. At the cursor's cell the forbidden set
// is the union of values already tried there in this search and the non-zero
// values currently in its row, column, and nonet; the first candidate in 1..9
// outside that set is placed and the cursor advances. When all nine are
// forbidden, the cell's attempt record is cleared and the cursor steps back
// one cell, which then retries its next untried candidate. Reaching the end
// of the blank-cell list yields a valid complete solution by construction.
// Backtracking past the first decision means the puzzle has no completion;
// that returns ErrUnsolvable.
//
// The first successful result is cached on the instance; later calls return
// a copy without re-running the search. The cache is mutex-guarded, so
// concurrent calls are serialized.
func (s *Backtracker) Solve() (*domain.Board, ports.Stats, error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached.Clone(), ports.Stats{Duration: time.Since(start)}, nil
	}

	grid := s.board.Clone()
	attempted := make(map[domain.CellCoord]uint16, len(s.unsolved))
	nodes := 0

	for i := 0; i < len(s.unsolved); {
		sp := s.unsolved[i]
		// Undo whatever a previous forward pass placed here; matters on
		// re-entry after a backtrack one level down.
		grid.Values[sp.Row][sp.Col] = 0

		forbidden := attempted[sp]
		row, _ := grid.Row(sp.Row)
		col, _ := grid.Column(sp.Col)
		box, _ := grid.Nonet(domain.NonetIndex(sp.Row, sp.Col))
		forbidden |= valueMask(row) | valueMask(col) | valueMask(box)

		nodes++
		v := firstCandidate(forbidden)
		if v != 0 {
			grid.Values[sp.Row][sp.Col] = v
			attempted[sp] |= 1 << v
			i++
			continue
		}
		// Exhausted: a future re-visit starts with a fresh attempt record.
		delete(attempted, sp)
		i--
		if i < 0 {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrUnsolvable
		}
	}

	s.cached = grid
	return grid.Clone(), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// valueMask folds the non-zero values of a row/column/nonet into a bitmask
// (bit v set for value v).
func valueMask(vals [domain.Size]uint8) uint16 {
	var m uint16
	for _, v := range vals {
		if v != 0 {
			m |= 1 << v
		}
	}
	return m
}

// firstCandidate returns the lowest value in 1..9 not in the mask, or 0 when
// all nine are forbidden. The candidate set is a rule of the domain, not a
// tunable.
func firstCandidate(forbidden uint16) uint8 {
	for v := uint8(1); v <= 9; v++ {
		if forbidden&(1<<v) == 0 {
			return v
		}
	}
	return 0
}
