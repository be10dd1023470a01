package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "twisty.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("version = %d, want %d", version, len(migrations))
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twisty.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path = %q, want %q", db.Path(), path)
	}
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO solves (solve_id, puzzle, started_at, solved_at, duration_ms, scramble_text, solution_text, move_count)
			VALUES ('x', '3x3x3', '2026-01-01T00:00:00Z', '2026-01-01T00:00:10Z', 10000, '', '', 0)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	n, err := NewSolveRepository(db).Count("")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("rolled back insert is visible: count = %d", n)
	}
}

func TestSolveRepository_CreateGet(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	solvedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id, err := repo.Create(Solve{
		Puzzle:   "3x3x3",
		SolvedAt: solvedAt,
		Duration: 42*time.Second + 130*time.Millisecond,
		Scramble: []string{"R", "U", "F'"},
		Solution: []string{"F", "U'", "R'"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil")
	}
	if s.Puzzle != "3x3x3" {
		t.Errorf("Puzzle = %q", s.Puzzle)
	}
	if s.Duration != 42130*time.Millisecond {
		t.Errorf("Duration = %v", s.Duration)
	}
	if !s.SolvedAt.Equal(solvedAt) {
		t.Errorf("SolvedAt = %v, want %v", s.SolvedAt, solvedAt)
	}
	if !s.StartedAt.Equal(solvedAt.Add(-s.Duration)) {
		t.Errorf("StartedAt = %v", s.StartedAt)
	}
	if s.MoveCount != 3 {
		t.Errorf("MoveCount = %d, want 3", s.MoveCount)
	}
	if len(s.Scramble) != 3 || s.Scramble[2] != "F'" {
		t.Errorf("Scramble = %v", s.Scramble)
	}
	if s.Notes != nil {
		t.Errorf("Notes = %q, want nil", *s.Notes)
	}
}

func TestSolveRepository_GetUnknown(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	s, err := repo.Get("missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil, got %+v", s)
	}
}

func TestSolveRepository_ListBestCount(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []struct {
		puzzle string
		secs   int
	}{
		{"3x3x3", 50},
		{"3x3x3", 30},
		{"2x2x2", 10},
		{"3x3x3", 40},
	}
	for i, e := range entries {
		_, err := repo.Create(Solve{
			Puzzle:   e.puzzle,
			SolvedAt: base.Add(time.Duration(i) * time.Minute),
			Duration: time.Duration(e.secs) * time.Second,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	recent, err := repo.List("", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("List returned %d solves, want 4", len(recent))
	}
	if recent[0].Duration != 40*time.Second {
		t.Errorf("newest solve = %v, want 40s", recent[0].Duration)
	}

	best, err := repo.Best("3x3x3", 2)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if len(best) != 2 || best[0].Duration != 30*time.Second || best[1].Duration != 40*time.Second {
		t.Errorf("Best = %+v", best)
	}

	n, err := repo.Count("3x3x3")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count(3x3x3) = %d, want 3", n)
	}
	n, _ = repo.Count("")
	if n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}

	names, err := repo.Puzzles()
	if err != nil {
		t.Fatalf("Puzzles: %v", err)
	}
	if len(names) != 2 || names[0] != "2x2x2" {
		t.Errorf("Puzzles = %v", names)
	}
}

func TestSolveRepository_NotesAndDelete(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Create(Solve{Puzzle: "4x4x4", Duration: time.Minute})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.SetNotes(id, "parity"); err != nil {
		t.Fatalf("SetNotes: %v", err)
	}
	s, _ := repo.Get(id)
	if s == nil || s.Notes == nil || *s.Notes != "parity" {
		t.Errorf("notes not stored: %+v", s)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	s, _ = repo.Get(id)
	if s != nil {
		t.Error("solve still present after Delete")
	}
}
