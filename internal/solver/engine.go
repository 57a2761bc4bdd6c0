package solver

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Engine is the stateless ports.Solver adapter: one Backtracker per request.
// Per-puzzle memoization lives on the Backtracker, so two requests with equal
// boards do not share a cache.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	bt, err := NewBacktracker(b)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return bt.Solve()
}
