package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

var easyPuzzle = [9][9]uint8{
	{0, 7, 3, 8, 9, 4, 5, 1, 2},
	{9, 1, 2, 7, 3, 5, 4, 8, 6},
	{8, 4, 5, 0, 0, 2, 9, 7, 3},
	{7, 9, 8, 2, 6, 1, 3, 5, 4},
	{5, 2, 6, 4, 7, 3, 8, 9, 1},
	{1, 3, 4, 5, 8, 9, 2, 6, 7},
	{4, 6, 9, 0, 2, 8, 7, 3, 5},
	{2, 8, 7, 3, 5, 6, 1, 4, 9},
	{3, 5, 1, 9, 4, 7, 6, 2, 0},
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(solver.NewEngine(), validator.New(), storage.NewFS(t.TempDir()))
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Board: easyPuzzle})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out solveResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Board[0][0] != 6 || out.Board[8][8] != 8 {
		t.Fatalf("wrong solution corners: %d, %d", out.Board[0][0], out.Board[8][8])
	}
	b := &domain.Board{Values: out.Board}
	if !b.Valid() || !b.Solved() {
		t.Fatal("response board is not a valid solution")
	}
	if out.PercentSolved <= 90 || out.PercentSolved >= 100 {
		t.Fatalf("percentSolved = %v, want ~93.8", out.PercentSolved)
	}
}

func TestSolveEndpointRejectsConflicts(t *testing.T) {
	srv := newTestServer(t)
	bad := easyPuzzle
	bad[0][0] = 7 // second 7 in row 0
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Board: bad})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	srv := newTestServer(t)
	var grid [9][9]uint8
	for c := 0; c < 8; c++ {
		grid[0][c] = uint8(c + 1)
	}
	grid[1][8] = 9
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Board: grid})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	bad := easyPuzzle
	bad[0][0] = 7
	resp := postJSON(t, srv.URL+"/api/validate", validateReq{Board: bad})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out validateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.OK || len(out.Conflicts) == 0 {
		t.Fatalf("conflict not reported: %+v", out)
	}
}

func TestSaveLoadListEndpoints(t *testing.T) {
	srv := newTestServer(t)

	p := domain.Puzzle{Name: "fixture", Difficulty: "easy", Board: domain.Board{Values: easyPuzzle}}
	resp := postJSON(t, srv.URL+"/api/save", p)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, want 200", resp.StatusCode)
	}
	var saved saveResp
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("save did not assign an ID")
	}

	resp = postJSON(t, srv.URL+"/api/load", loadReq{ID: saved.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("load status = %d, want 200", resp.StatusCode)
	}
	var loaded loadResp
	if err := json.NewDecoder(resp.Body).Decode(&loaded); err != nil {
		t.Fatalf("decode load response: %v", err)
	}
	if loaded.Puzzle == nil || loaded.Puzzle.Board.Values != easyPuzzle {
		t.Fatal("loaded puzzle does not match saved board")
	}

	listHTTP, err := http.Get(srv.URL + "/api/list")
	if err != nil {
		t.Fatalf("GET /api/list: %v", err)
	}
	defer listHTTP.Body.Close()
	var listed listResp
	if err := json.NewDecoder(listHTTP.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Puzzles) != 1 || listed.Puzzles[0].ID != saved.ID {
		t.Fatalf("list = %+v, want the saved puzzle", listed.Puzzles)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/solve")
	if err != nil {
		t.Fatalf("GET /api/solve: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
