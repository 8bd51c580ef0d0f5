// Package storage provides SQLite-based persistence for round replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/replay"
)

// ErrNotFound is returned when a replay id does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is a stored round.
type ReplayEntry struct {
	ID        string
	Log       replay.Log
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			bounces TEXT NOT NULL,
			config TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
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

// SaveReplay stores a round and returns its generated id.
// The bounces and config columns are both YAML.
func (s *Store) SaveReplay(l replay.Log) (string, error) {
	bounces, err := yaml.Marshal(l.Bounces)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode bounces: %w", err)
	}
	cfg, err := config.Marshal(l.Config)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode config: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO replays (id, seed, score, ticks, bounces, config)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, l.Seed, l.Score, l.Ticks, string(bounces), string(cfg),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	return id, nil
}

// Replay retrieves a stored round by id. Returns ErrNotFound if it does not exist.
func (s *Store) Replay(id string) (*ReplayEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, score, ticks, bounces, config, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)

	entry, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RecentReplays retrieves the most recently saved rounds, newest first.
func (s *Store) RecentReplays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, score, ticks, bounces, config, created_at
		 FROM replays
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		entry, err := scanReplay(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteReplay removes a stored round. Returns ErrNotFound if it does not exist.
func (s *Store) DeleteReplay(id string) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReplay(sc scanner) (*ReplayEntry, error) {
	var (
		e          ReplayEntry
		bounceYAML string
		cfgYAML    string
		createdAt  any
	)
	err := sc.Scan(&e.ID, &e.Log.Seed, &e.Log.Score, &e.Log.Ticks, &bounceYAML, &cfgYAML, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if err := yaml.Unmarshal([]byte(bounceYAML), &e.Log.Bounces); err != nil {
		return nil, fmt.Errorf("storage: replay %s: cannot decode bounces: %w", e.ID, err)
	}
	cfg, err := config.Parse([]byte(cfgYAML))
	if err != nil {
		return nil, fmt.Errorf("storage: replay %s: %w", e.ID, err)
	}
	e.Log.Config = cfg
	e.CreatedAt = parseTime(createdAt)

	return &e, nil
}

// parseTime handles both time.Time and the string form sqlite returns for DATETIME columns.
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
