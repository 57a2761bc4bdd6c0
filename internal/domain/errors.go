package domain

import "errors"

// Sentinel errors for the board and solver surface. Callers match them with
// errors.Is; constructors wrap them with positional detail.
var (
	// ErrInvalidDimensions reports input that is not exactly 9 rows of 9 cells.
	ErrInvalidDimensions = errors.New("board must be 9x9")

	// ErrInvalidValue reports a cell value outside [0,9].
	ErrInvalidValue = errors.New("cell value must be in [0,9]")

	// ErrInvalidIndex reports a row/column/nonet index outside [0,8].
	// This is a programming-contract violation, not a user input error.
	ErrInvalidIndex = errors.New("index must be in [0,8]")

	// ErrInvalidPuzzle reports a starting grid with a duplicate non-zero
	// value in some row, column, or nonet.
	ErrInvalidPuzzle = errors.New("starting board violates sudoku constraints")

	// ErrUnsolvable reports a grid that passes the constraint check but has
	// no legal completion.
	ErrUnsolvable = errors.New("board has no valid completion")
)
