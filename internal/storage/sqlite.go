// Package storage provides SQLite-based persistence for match3 sessions,
// the high score and the history of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/match3/internal/games/match3"
)

// highScoreKey is the single row of the high_scores table.
const highScoreKey = "match3"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID         int64
	Difficulty string
	Score      int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Every pooled connection waits on locks held by other processes
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			size INTEGER NOT NULL,
			grid TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			moves_left INTEGER NOT NULL DEFAULT 0,
			target_score INTEGER NOT NULL,
			status TEXT NOT NULL,
			new_high_score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_difficulty ON scores(difficulty);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// querier is the subset of *sql.DB and *sql.Conn the session queries use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LoadSession implements match3.SessionStore.
// Returns nil, nil when the session has never been saved. Rows that cannot
// be decoded return an error wrapping match3.ErrCorruptSnapshot.
func (s *Store) LoadSession(ctx context.Context, id string) (*match3.Snapshot, error) {
	return loadSession(ctx, s.db, id)
}

// SaveSession implements match3.SessionStore. It inserts or replaces the
// session row in a single statement.
func (s *Store) SaveSession(ctx context.Context, id string, snap match3.Snapshot) error {
	return saveSession(ctx, s.db, id, snap)
}

// UpdateSession implements match3.SessionUpdater. The load, fn and the
// save of the snapshot fn returns run inside one BEGIN IMMEDIATE
// transaction on a pinned connection, so other processes updating the
// same session wait for the commit instead of overwriting it.
func (s *Store) UpdateSession(ctx context.Context, id string, fn func(*match3.Snapshot, error) (*match3.Snapshot, error)) (err error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("storage: cannot get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("storage: cannot begin update of session %q: %w", id, err)
	}
	defer func() {
		if err != nil {
			conn.ExecContext(context.Background(), "ROLLBACK")
		}
	}()

	snap, loadErr := loadSession(ctx, conn, id)
	if loadErr != nil && !errors.Is(loadErr, match3.ErrCorruptSnapshot) {
		return loadErr
	}

	out, err := fn(snap, loadErr)
	if err != nil {
		return err
	}
	if out != nil {
		if err := saveSession(ctx, conn, id, *out); err != nil {
			return err
		}
	}

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("storage: cannot commit session %q: %w", id, err)
	}
	return nil
}

func loadSession(ctx context.Context, q querier, id string) (*match3.Snapshot, error) {
	var (
		snap         match3.Snapshot
		grid, status string
		newHigh      int
	)
	err := q.QueryRowContext(ctx,
		`SELECT difficulty, size, grid, score, moves_left, target_score, status, new_high_score
		 FROM sessions
		 WHERE id = ?`,
		id,
	).Scan(&snap.Difficulty, &snap.Size, &grid, &snap.Score, &snap.MovesLeft, &snap.TargetScore, &status, &newHigh)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load session %q: %w", id, err)
	}

	snap.Grid, err = match3.DecodeGrid(grid)
	if err != nil {
		return nil, fmt.Errorf("storage: session %q: %w", id, err)
	}
	st, ok := match3.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("storage: session %q: %w: unknown status %q", id, match3.ErrCorruptSnapshot, status)
	}
	snap.Status = st
	snap.NewHighScore = newHigh != 0

	return &snap, nil
}

func saveSession(ctx context.Context, q querier, id string, snap match3.Snapshot) error {
	newHigh := 0
	if snap.NewHighScore {
		newHigh = 1
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO sessions
		 (id, difficulty, size, grid, score, moves_left, target_score, status, new_high_score, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		 	difficulty = excluded.difficulty,
		 	size = excluded.size,
		 	grid = excluded.grid,
		 	score = excluded.score,
		 	moves_left = excluded.moves_left,
		 	target_score = excluded.target_score,
		 	status = excluded.status,
		 	new_high_score = excluded.new_high_score,
		 	updated_at = CURRENT_TIMESTAMP`,
		id, snap.Difficulty, snap.Size, match3.EncodeGrid(snap.Grid),
		snap.Score, snap.MovesLeft, snap.TargetScore, snap.Status.String(), newHigh,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session %q: %w", id, err)
	}
	return nil
}

// HighScore implements match3.HighScoreStore.
// Returns 0 if no high score has been written.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx,
		"SELECT score FROM high_scores WHERE key = ?",
		highScoreKey,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// WriteHighScore implements match3.HighScoreStore.
func (s *Store) WriteHighScore(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO high_scores (key, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		highScoreKey, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// RecordScore implements match3.ScoreRecorder.
func (s *Store) RecordScore(ctx context.Context, difficulty string, score int) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (difficulty, score) VALUES (?, ?)",
		difficulty, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the top N scores, ordered by score descending.
// An empty difficulty returns scores across all difficulties.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, created_at
		 FROM scores
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores deletes the history for a difficulty, or all history when
// difficulty is empty.
func (s *Store) ClearScores(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE ? = '' OR difficulty = ?", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over finished games.
type Stats struct {
	Difficulty string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// ScoreStats aggregates the history of one difficulty, or of every
// difficulty when difficulty is empty. GamesCount is 0 when nothing matches.
func (s *Store) ScoreStats(difficulty string) (*Stats, error) {
	st := Stats{Difficulty: difficulty}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores
		 WHERE ? = '' OR difficulty = ?`,
		difficulty, difficulty,
	).Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store satisfies the engine's persistence ports
var (
	_ match3.SessionStore   = (*Store)(nil)
	_ match3.HighScoreStore = (*Store)(nil)
	_ match3.ScoreRecorder  = (*Store)(nil)
	_ match3.SessionUpdater = (*Store)(nil)
)
