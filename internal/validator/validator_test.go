package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

var clean = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestValidateCleanBoard(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: clean})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean board flagged: ok=%v conflicts=%v", ok, conf)
	}
}

func TestValidateReportsConflictCoordinates(t *testing.T) {
	cases := []struct {
		name string
		set  domain.CellCoord
		val  uint8
		want domain.CellCoord // second occurrence in scan order
	}{
		{"row duplicate", domain.CellCoord{Row: 0, Col: 8}, 5, domain.CellCoord{Row: 0, Col: 8}},
		{"column duplicate", domain.CellCoord{Row: 8, Col: 0}, 5, domain.CellCoord{Row: 8, Col: 0}},
		{"box duplicate", domain.CellCoord{Row: 1, Col: 1}, 3, domain.CellCoord{Row: 1, Col: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := clean
			g[tc.set.Row][tc.set.Col] = tc.val
			ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: g})
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok {
				t.Fatal("conflict not detected")
			}
			found := false
			for _, c := range conf {
				if c == tc.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("conflicts %v do not include %v", conf, tc.want)
			}
		})
	}
}

func TestValidateAgreesWithBoardValid(t *testing.T) {
	grids := [][9][9]uint8{clean}
	dup := clean
	dup[4][4] = 8 // collides with row 4 and column 4
	grids = append(grids, dup)

	for _, g := range grids {
		b := &domain.Board{Values: g}
		ok, _, err := New().Validate(context.Background(), b)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if ok != b.Valid() {
			t.Fatalf("validator ok=%v but Board.Valid=%v", ok, b.Valid())
		}
	}
}
