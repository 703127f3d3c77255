// Package storage provides SQLite-based persistence for the best score and
// finished-game history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Game outcomes stored in the history table.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
	OutcomeQuit = "quit"
)

// GameRecord is one finished (or abandoned) game.
type GameRecord struct {
	ID       int64
	Score    int
	Moves    int
	MaxTile  int
	Target   int
	Outcome  string // OutcomeWon, OutcomeLost or OutcomeQuit
	PlayedAt time.Time
}

// Stats aggregates the recorded games.
type Stats struct {
	GamesPlayed int
	BestScore   int
	AvgScore    float64
	BestTile    int
	Wins        int
}

// Open creates or opens the database at the given path, creating parent
// directories and running migrations as needed.
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

	store := &Store{
		db: db,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "storage",
		}),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			target INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
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

// LoadBest returns the persisted best score, or 0 when no record exists or
// the store is unreadable. An unreadable record is logged and degrades to 0.
func (s *Store) LoadBest() int {
	var value sql.NullInt64
	err := s.db.QueryRow("SELECT value FROM best_score WHERE id = 1").Scan(&value)
	if err == sql.ErrNoRows {
		return 0
	}
	if err != nil {
		s.logger.Warn("cannot read best score", "error", err)
		return 0
	}
	if !value.Valid {
		return 0
	}
	return int(value.Int64)
}

// SaveBest upserts the best score and reports whether the write succeeded.
// A failure is logged, not raised; the caller keeps the value in memory.
func (s *Store) SaveBest(value int) bool {
	_, err := s.db.Exec(
		`INSERT INTO best_score (id, value) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET value = excluded.value`,
		value,
	)
	if err != nil {
		s.logger.Warn("cannot save best score", "error", err)
		return false
	}
	return true
}

// SaveGame records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (score, moves, max_tile, target, outcome)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Score, rec.Moves, rec.MaxTile, rec.Target, rec.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the top N games ordered by score descending.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, moves, max_tile, target, outcome, played_at
		 FROM games
		 ORDER BY score DESC, played_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// RecentGames retrieves the most recently played games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, moves, max_tile, target, outcome, played_at
		 FROM games
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetStats aggregates statistics over all recorded games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0)
		 FROM games`,
	).Scan(&stats.GamesPlayed, &stats.BestScore, &stats.AvgScore, &stats.BestTile, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	return stats, nil
}

// ClearGames deletes the recorded game history. The best score is stored
// separately and is unaffected.
func (s *Store) ClearGames() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// scanGames reads game rows, tolerating both time.Time and string datetimes
// from the driver.
func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var playedAt any
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Moves, &rec.MaxTile, &rec.Target, &rec.Outcome, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := playedAt.(type) {
		case time.Time:
			rec.PlayedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.PlayedAt = parsed
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
