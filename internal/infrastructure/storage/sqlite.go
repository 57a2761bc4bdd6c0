package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"svw.info/sudoku-solver/internal/domain"
)

// SQLite stores puzzles in a single-table SQLite database. Boards are kept as
// JSON text so the row layout matches the FS store's file contents.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and migrates the
// schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT,
		notes TEXT,
		difficulty TEXT,
		created_at INTEGER NOT NULL,
		board TEXT NOT NULL,
		solution TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	board, err := json.Marshal(p.Board)
	if err != nil {
		return err
	}
	var solution any
	if p.Solution != nil {
		raw, err := json.Marshal(p.Solution)
		if err != nil {
			return err
		}
		solution = string(raw)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO puzzles (id, name, notes, difficulty, created_at, board, solution)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Notes, p.Difficulty, p.CreatedAt, string(board), solution)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, notes, difficulty, created_at, board, solution
		FROM puzzles WHERE id = ?`, id)

	var p domain.Puzzle
	var board string
	var solution sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Notes, &p.Difficulty, &p.CreatedAt, &board, &solution)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(board), &p.Board); err != nil {
		return nil, err
	}
	if solution.Valid {
		var sol domain.Board
		if err := json.Unmarshal([]byte(solution.String), &sol); err != nil {
			return nil, err
		}
		p.Solution = &sol
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Difficulty, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
