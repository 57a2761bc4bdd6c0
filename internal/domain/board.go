package domain

import "fmt"

const (
	// Size is the edge length of a standard grid.
	Size = 9
	// Cells is the total number of cells.
	Cells = Size * Size
)

// Board holds the cell values of one grid; 0 marks an unsolved cell.
// Boards are copied by value and never share backing storage.
type Board struct {
	Values [Size][Size]uint8 `json:"board"`
}

// NewBoard builds a Board from 9 rows of 9 cells. It checks shape and value
// range only; constraint legality is a separate predicate (Valid).
func NewBoard(rows [][]uint8) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidDimensions, len(rows))
	}
	var g [Size][Size]uint8
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidDimensions, r, len(row))
		}
		copy(g[r][:], row)
	}
	return FromGrid(g)
}

// FromFlat builds a Board from a flat 81-value sequence in row-major order.
func FromFlat(cells []uint8) (*Board, error) {
	if len(cells) != Cells {
		return nil, fmt.Errorf("%w: got %d cells", ErrInvalidDimensions, len(cells))
	}
	var g [Size][Size]uint8
	for i, v := range cells {
		g[i/Size][i%Size] = v
	}
	return FromGrid(g)
}

// FromGrid builds a Board from an already-shaped grid, rejecting values
// outside [0,9].
func FromGrid(g [Size][Size]uint8) (*Board, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] > 9 {
				return nil, fmt.Errorf("%w: %d at row %d col %d", ErrInvalidValue, g[r][c], r, c)
			}
		}
	}
	return &Board{Values: g}, nil
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Row returns the 9 values of row i, left to right.
func (b *Board) Row(i int) ([Size]uint8, error) {
	if i < 0 || i >= Size {
		return [Size]uint8{}, fmt.Errorf("%w: row %d", ErrInvalidIndex, i)
	}
	return b.Values[i], nil
}

// Column returns the 9 values of column j, top to bottom.
func (b *Board) Column(j int) ([Size]uint8, error) {
	if j < 0 || j >= Size {
		return [Size]uint8{}, fmt.Errorf("%w: column %d", ErrInvalidIndex, j)
	}
	var col [Size]uint8
	for r := 0; r < Size; r++ {
		col[r] = b.Values[r][j]
	}
	return col, nil
}

// Nonet returns the 9 values of 3x3 box k in row-major internal order.
// Boxes are numbered 0-8 row-major: box 0 covers rows 0-2/cols 0-2, box 1
// rows 0-2/cols 3-5, box 8 rows 6-8/cols 6-8.
func (b *Board) Nonet(k int) ([Size]uint8, error) {
	if k < 0 || k >= Size {
		return [Size]uint8{}, fmt.Errorf("%w: nonet %d", ErrInvalidIndex, k)
	}
	r0, c0 := 3*(k/3), 3*(k%3)
	var box [Size]uint8
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			box[dr*3+dc] = b.Values[r0+dr][c0+dc]
		}
	}
	return box, nil
}

// NonetIndex maps a cell to the index of the box containing it.
func NonetIndex(r, c int) int {
	return (r/3)*3 + c/3
}

// Valid reports whether every row, column, and nonet holds pairwise-distinct
// non-zero values. Blanks are excluded from the uniqueness check. Validity
// does not imply solvability.
func (b *Board) Valid() bool {
	for i := 0; i < Size; i++ {
		row, _ := b.Row(i)
		col, _ := b.Column(i)
		box, _ := b.Nonet(i)
		if hasDuplicate(row) || hasDuplicate(col) || hasDuplicate(box) {
			return false
		}
	}
	return true
}

func hasDuplicate(vals [Size]uint8) bool {
	m := 0
	for _, v := range vals {
		if v == 0 {
			continue
		}
		bit := 1 << v
		if m&bit != 0 {
			return true
		}
		m |= bit
	}
	return false
}

// Solved reports whether no cell holds 0. It does not re-verify validity;
// callers conclude a genuine solution only from Valid && Solved.
func (b *Board) Solved() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// UnsolvedSpaces returns the coordinates of all zero cells in row-major scan
// order. The solver depends on this exact order as its search order.
func (b *Board) UnsolvedSpaces() []CellCoord {
	var out []CellCoord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Values[r][c] == 0 {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}
