package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Solve is one timed solve in the log.
type Solve struct {
	SolveID   string
	Puzzle    string
	StartedAt time.Time
	SolvedAt  time.Time
	Duration  time.Duration
	Scramble  []string
	Solution  []string
	MoveCount int
	Notes     *string
}

// SolveRepository provides access to logged solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

const solveColumns = `solve_id, puzzle, started_at, solved_at, duration_ms,
	scramble_text, solution_text, move_count, notes`

// Create stores a solve and returns its ID. A zero StartedAt is derived
// from SolvedAt and Duration.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	if s.SolvedAt.IsZero() {
		s.SolvedAt = time.Now()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = s.SolvedAt.Add(-s.Duration)
	}
	if s.MoveCount == 0 {
		s.MoveCount = len(s.Solution)
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (`+solveColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, s.Puzzle,
		s.StartedAt.UTC().Format(time.RFC3339Nano),
		s.SolvedAt.UTC().Format(time.RFC3339Nano),
		s.Duration.Milliseconds(),
		strings.Join(s.Scramble, " "),
		strings.Join(s.Solution, " "),
		s.MoveCount, s.Notes)
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. It returns nil, nil when the ID is unknown.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID)
	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List retrieves the most recent solves, newest first. An empty puzzle
// lists every puzzle.
func (r *SolveRepository) List(puzzle string, limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+` FROM solves
		WHERE ? = '' OR puzzle = ?
		ORDER BY solved_at DESC
		LIMIT ?
	`, puzzle, puzzle, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// Best retrieves the fastest solves of a puzzle.
func (r *SolveRepository) Best(puzzle string, limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+` FROM solves
		WHERE puzzle = ?
		ORDER BY duration_ms ASC, solved_at ASC
		LIMIT ?
	`, puzzle, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list best solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// Count returns the number of logged solves, optionally for one puzzle.
func (r *SolveRepository) Count(puzzle string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM solves WHERE ? = '' OR puzzle = ?`, puzzle, puzzle).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// Puzzles returns every puzzle name with at least one logged solve.
func (r *SolveRepository) Puzzles() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT puzzle FROM solves ORDER BY puzzle`)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SetNotes replaces the notes of a solve.
func (r *SolveRepository) SetNotes(solveID, notes string) error {
	_, err := r.db.Exec("UPDATE solves SET notes = ? WHERE solve_id = ?", notes, solveID)
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}
	return nil
}

// Delete removes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var startedAt, solvedAt, scramble, solution string
	var durationMs int64
	var notes sql.NullString

	err := row.Scan(&s.SolveID, &s.Puzzle, &startedAt, &solvedAt, &durationMs,
		&scramble, &solution, &s.MoveCount, &notes)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	s.SolvedAt, _ = time.Parse(time.RFC3339Nano, solvedAt)
	s.Duration = time.Duration(durationMs) * time.Millisecond
	s.Scramble = strings.Fields(scramble)
	s.Solution = strings.Fields(solution)
	if notes.Valid {
		s.Notes = &notes.String
	}
	return &s, nil
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	return solves, rows.Err()
}
