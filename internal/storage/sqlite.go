// Package storage keeps the round history of a play session in an
// in-memory SQLite database. Nothing is written to disk: the history
// lives as long as the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite connection for the session history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	GameID    string
	Hits      uint32
	Misses    uint32
	Escapes   uint32
	Points    int64
	Reason    string // "timeout", "board_full", "cancelled"
	Duration  time.Duration
	CreatedAt time.Time
}

// Summary aggregates every round of one game mode.
type Summary struct {
	Rounds int
	Hits   int64
	Misses int64
	Points int64
	Best   int64
}

// Accuracy returns hits / (hits + misses) over the session.
func (s Summary) Accuracy() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			escapes INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL,
			reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, points DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.GameID == "" {
		return 0, fmt.Errorf("storage: round without game id")
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, hits, misses, escapes, points, reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Hits, r.Misses, r.Escapes, r.Points, r.Reason, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, game_id, hits, misses, escapes, points, reason, duration_ms, created_at`

// TopRounds retrieves the best N rounds for the given game.
// Results are ordered by points descending, earlier rounds first on ties.
func (s *Store) TopRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY points DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// Rounds retrieves every round of the given game in the order played.
// An empty gameID returns rounds of all games.
func (s *Store) Rounds(gameID string) ([]RoundRecord, error) {
	if gameID == "" {
		return s.query(`SELECT ` + roundColumns + ` FROM rounds ORDER BY id ASC`)
	}
	return s.query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id ASC`,
		gameID,
	)
}

func (s *Store) query(q string, args ...any) ([]RoundRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Hits, &r.Misses, &r.Escapes,
			&r.Points, &r.Reason, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Best returns the highest points scored in the given game.
// Returns 0 if no rounds exist.
func (s *Store) Best(gameID string) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(points) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best round: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return best.Int64, nil
}

// Summarize aggregates every round of the given game.
func (s *Store) Summarize(gameID string) (Summary, error) {
	var sum Summary
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(hits), 0), COALESCE(SUM(misses), 0),
		        COALESCE(SUM(points), 0), MAX(points)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Rounds, &sum.Hits, &sum.Misses, &sum.Points, &best)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize rounds: %w", err)
	}

	if best.Valid {
		sum.Best = best.Int64
	}
	return sum, nil
}

// Count returns the number of rounds recorded for the given game.
func (s *Store) Count(gameID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return count, nil
}
