package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Sudoku with metadata. Difficulty is a caller-supplied
// label; the system never grades puzzles itself.
type Puzzle struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Board      Board  `json:"board"`
	Solution   *Board `json:"solution,omitempty"`
	CreatedAt  int64  `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
}
