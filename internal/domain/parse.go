package domain

import (
	"fmt"
	"strings"
)

// Parse reads a puzzle from text: 81 cells as digits, with '.' or '0' for a
// blank. Whitespace is ignored, so both a single 81-character line and a
// 9-line grid parse.
func Parse(s string) (*Board, error) {
	cells := make([]uint8, 0, Cells)
	for _, r := range s {
		switch {
		case r == '.':
			cells = append(cells, 0)
		case r >= '0' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			// skip
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidValue, r)
		}
		if len(cells) > Cells {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidDimensions, Cells)
		}
	}
	return FromFlat(cells)
}

// String renders the grid as 9 lines of 9 digits, blanks as '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		if r != Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
