// Package storage provides SQLite-based persistence for Stack Tower
// score records. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/stacktower/stacktower/internal/game"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			blocks INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT,
			level TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode ON scores(mode);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);
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

// SaveScore records a finished play session.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(rec game.ScoreRecord) (int64, error) {
	if !rec.Mode.Valid() {
		return 0, fmt.Errorf("storage: unknown mode %q", rec.Mode)
	}

	var difficulty sql.NullString
	if rec.Difficulty.Valid() {
		difficulty = sql.NullString{String: string(rec.Difficulty), Valid: true}
	}
	var level sql.NullString
	if rec.Level != "" {
		level = sql.NullString{String: rec.Level, Valid: true}
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (mode, score, blocks, difficulty, level) VALUES (?, ?, ?, ?, ?)",
		string(rec.Mode), rec.Score, rec.Blocks, difficulty, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
// A zero-value mode means "all modes merged". Records sharing a score
// keep the order the database returns them in.
func (s *Store) TopScores(mode game.Mode, limit int) ([]game.ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, mode, score, blocks, difficulty, level, created_at
		 FROM scores`
	args := []any{}
	if mode != "" {
		query += " WHERE mode = ?"
		args = append(args, string(mode))
	}
	query += " ORDER BY score DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// RecentScores retrieves the N most recent scores for a mode,
// newest first. Used as the per-mode sample for statistics.
func (s *Store) RecentScores(mode game.Mode, limit int) ([]game.ScoreRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, blocks, difficulty, level, created_at
		 FROM scores
		 WHERE mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(mode game.Mode) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		string(mode),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Count returns the number of stored records for a mode, or across
// all modes when mode is the zero value.
func (s *Store) Count(mode game.Mode) (int, error) {
	query := "SELECT COUNT(*) FROM scores"
	args := []any{}
	if mode != "" {
		query += " WHERE mode = ?"
		args = append(args, string(mode))
	}

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	return n, nil
}

// ClearAllData deletes every stored score record.
func (s *Store) ClearAllData() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// scanRecords reads score rows into records.
func scanRecords(rows *sql.Rows) ([]game.ScoreRecord, error) {
	var records []game.ScoreRecord
	for rows.Next() {
		var (
			rec        game.ScoreRecord
			mode       string
			difficulty sql.NullString
			level      sql.NullString
			createdAt  any
		)
		if err := rows.Scan(&rec.ID, &mode, &rec.Score, &rec.Blocks, &difficulty, &level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.Mode = game.Mode(mode)
		if difficulty.Valid {
			rec.Difficulty = game.Difficulty(difficulty.String)
		}
		if level.Valid {
			rec.Level = level.String
		}
		rec.CreatedAt = parseTimestamp(createdAt)

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTimestamp handles both time.Time and string datetime values
// returned by the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
