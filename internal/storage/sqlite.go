// Package storage provides SQLite-based persistence for the runner:
// the capped leaderboard and flat key-value preferences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LeaderboardSize is the maximum number of persisted runs. The table is
// truncated to the top entries by score on every insert.
const LeaderboardSize = 10

// Preference keys. Values are stored as strings; readers fall back to
// defaults when a key is absent or unparseable.
const (
	PrefUsername    = "username"
	PrefAdsEnabled  = "ads_enabled"
	PrefSkin        = "skin"
	PrefLayout      = "layout"
	PrefHighScore   = "high_score"
	PrefGamesPlayed = "games_played"
	PrefAdsViewed   = "ads_viewed"
	PrefInitialized = "initialized"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a single leaderboard record.
type RunEntry struct {
	ID        int64
	Username  string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Stats aggregates historical play statistics.
type Stats struct {
	GamesPlayed int
	HighScore   int
	AvgScore    float64
	AdsViewed   int
	LastPlayed  time.Time
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

// migrate creates the schema if it doesn't exist and seeds the preference
// defaults exactly once.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, id ASC);

		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	seed := [][2]string{
		{PrefUsername, "player"},
		{PrefAdsEnabled, "1"},
		{PrefSkin, "gopher"},
		{PrefLayout, "wide"},
		{PrefHighScore, "0"},
		{PrefGamesPlayed, "0"},
		{PrefAdsViewed, "0"},
		{PrefInitialized, "1"},
	}
	for _, kv := range seed {
		if _, err := s.db.Exec(
			"INSERT OR IGNORE INTO prefs (key, value) VALUES (?, ?)",
			kv[0], kv[1],
		); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends a leaderboard entry and truncates the table to the top
// LeaderboardSize entries by score descending (stable by insertion order).
// Returns the ID of the inserted record.
func (s *Store) SaveRun(username string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (username, score, level) VALUES (?, ?, ?)",
		username, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := s.db.Exec(
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY score DESC, id ASC LIMIT ?
		)`,
		LeaderboardSize,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot truncate leaderboard: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the leaderboard ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 || limit > LeaderboardSize {
		limit = LeaderboardSize
	}

	rows, err := s.db.Query(
		`SELECT id, username, score, level, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Username, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RenameUser rewrites the username on every historical entry that matches
// the old value. Returns the number of rows updated.
func (s *Store) RenameUser(oldName, newName string) (int64, error) {
	result, err := s.db.Exec(
		"UPDATE runs SET username = ? WHERE username = ?",
		newName, oldName,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot rename user: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count renamed rows: %w", err)
	}
	return n, nil
}

// HighScore returns the persisted high score.
func (s *Store) HighScore() int {
	return s.IntPref(PrefHighScore, 0)
}

// UpdateHighScore raises the persisted high score if the given score
// exceeds it. Returns true when a new record was set.
func (s *Store) UpdateHighScore(score int) (bool, error) {
	if score <= s.HighScore() {
		return false, nil
	}
	if err := s.SetPref(PrefHighScore, strconv.Itoa(score)); err != nil {
		return false, err
	}
	return true, nil
}

// Pref returns a preference value, falling back to def when the key is
// absent or the read fails.
func (s *Store) Pref(key, def string) string {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		return def
	}
	return value
}

// SetPref stores a preference value.
func (s *Store) SetPref(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set pref %s: %w", key, err)
	}
	return nil
}

// IntPref returns an integer preference, falling back to def when absent
// or unparseable.
func (s *Store) IntPref(key string, def int) int {
	raw := s.Pref(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// BoolPref returns a boolean preference ("1"/"0"), falling back to def.
func (s *Store) BoolPref(key string, def bool) bool {
	switch s.Pref(key, "") {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}

// SetBoolPref stores a boolean preference as "1" or "0".
func (s *Store) SetBoolPref(key string, value bool) error {
	raw := "0"
	if value {
		raw = "1"
	}
	return s.SetPref(key, raw)
}

// IncrementCounter adds one to an integer preference and returns the new
// value.
func (s *Store) IncrementCounter(key string) (int, error) {
	n := s.IntPref(key, 0) + 1
	if err := s.SetPref(key, strconv.Itoa(n)); err != nil {
		return 0, err
	}
	return n, nil
}

// GetStats aggregates play statistics from the counters and the runs table.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{
		GamesPlayed: s.IntPref(PrefGamesPlayed, 0),
		HighScore:   s.HighScore(),
		AdsViewed:   s.IntPref(PrefAdsViewed, 0),
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRow("SELECT AVG(score) FROM runs").Scan(&avg); err != nil {
		return nil, fmt.Errorf("storage: cannot get average score: %w", err)
	}
	if avg.Valid {
		stats.AvgScore = avg.Float64
	}

	var lastPlayed any
	err := s.db.QueryRow(
		"SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
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
