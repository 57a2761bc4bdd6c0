package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// GridValidator reports, per row, column, and nonet, the cells that repeat an
// earlier non-zero value. Blank cells never conflict.
type GridValidator struct{}

func New() *GridValidator { return &GridValidator{} }

func (v *GridValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for i := 0; i < domain.Size; i++ {
		row, _ := b.Row(i)
		conf = appendConflicts(conf, row, func(j int) domain.CellCoord {
			return domain.CellCoord{Row: i, Col: j}
		})
		col, _ := b.Column(i)
		conf = appendConflicts(conf, col, func(j int) domain.CellCoord {
			return domain.CellCoord{Row: j, Col: i}
		})
		box, _ := b.Nonet(i)
		r0, c0 := 3*(i/3), 3*(i%3)
		conf = appendConflicts(conf, box, func(j int) domain.CellCoord {
			return domain.CellCoord{Row: r0 + j/3, Col: c0 + j%3}
		})
	}
	return len(conf) == 0, conf, nil
}

// appendConflicts marks the second and later occurrences of each value.
func appendConflicts(conf []domain.CellCoord, vals [domain.Size]uint8, at func(int) domain.CellCoord) []domain.CellCoord {
	m := 0
	for j, val := range vals {
		if val == 0 {
			continue
		}
		bit := 1 << val
		if m&bit != 0 {
			conf = append(conf, at(j))
		}
		m |= bit
	}
	return conf
}
