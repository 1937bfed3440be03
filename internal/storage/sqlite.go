// Package storage keeps match results in an in-process SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory: results are shared for the lifetime of the
// process (simulator runs, SSH sessions) and are gone when it exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-battleship/internal/game"
)

// Store manages the SQLite database connection for match results.
type Store struct {
	db *sql.DB
}

// MatchRecord is one stored match result.
type MatchRecord struct {
	ID         int64
	MatchID    string
	Winner     string
	WinnerKind string
	Loser      string
	LoserKind  string
	Turns      int
	Shots      int
	Hits       int
	Duration   time.Duration
	FinishedAt time.Time
}

// Summary aggregates every stored match.
type Summary struct {
	Games         int
	CPUWins       int
	HumanWins     int
	AvgShotsToWin float64
	BestShots     int // Fewest shots any winner needed, 0 if no games
}

// Standing is one row of the winners leaderboard.
type Standing struct {
	Name      string
	Wins      int
	BestShots int
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	store, err := OpenDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// OpenDB wraps an existing connection pool and runs migrations.
func OpenDB(db *sql.DB) (*Store, error) {
	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner TEXT NOT NULL,
			winner_kind TEXT NOT NULL,
			loser TEXT NOT NULL,
			loser_kind TEXT NOT NULL,
			turns INTEGER NOT NULL,
			shots INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			finished_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
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

// SaveResult records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r game.Result) (int64, error) {
	finished := r.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, winner, winner_kind, loser, loser_kind, turns, shots, hits, duration_ms, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID,
		r.Winner,
		r.WinnerKind,
		r.Loser,
		r.LoserKind,
		r.Turns,
		r.Shots,
		r.Hits,
		r.Duration.Milliseconds(),
		finished.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match %s: %w", r.MatchID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent retrieves the most recently saved matches, newest first.
func (s *Store) Recent(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, winner, winner_kind, loser, loser_kind,
		        turns, shots, hits, duration_ms, finished_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var durationMS int64
		var finished string
		if err := rows.Scan(
			&r.ID,
			&r.MatchID,
			&r.Winner,
			&r.WinnerKind,
			&r.Loser,
			&r.LoserKind,
			&r.Turns,
			&r.Shots,
			&r.Hits,
			&durationMS,
			&finished,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Duration = time.Duration(durationMS) * time.Millisecond
		if parsed, err := time.Parse(time.RFC3339Nano, finished); err == nil {
			r.FinishedAt = parsed
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary aggregates all stored matches.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner_kind = 'cpu' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner_kind = 'human' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(shots), 0),
		        COALESCE(MIN(shots), 0)
		 FROM matches`,
	).Scan(&sum.Games, &sum.CPUWins, &sum.HumanWins, &sum.AvgShotsToWin, &sum.BestShots)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query summary: %w", err)
	}
	return sum, nil
}

// Leaders returns the players with the most wins, ties broken by fewest shots.
func (s *Store) Leaders(limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) AS wins, MIN(shots) AS best
		 FROM matches
		 GROUP BY winner
		 ORDER BY wins DESC, best ASC, winner ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaders: %w", err)
	}
	defer rows.Close()

	var out []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Name, &st.Wins, &st.BestShots); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}
