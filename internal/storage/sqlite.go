// Package storage provides SQLite-based persistence for the scenario library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/firegrid/internal/scenario"
)

// ErrNotFound is returned when no scenario matches a name or ID.
var ErrNotFound = errors.New("storage: scenario not found")

// Store manages the SQLite database connection for the scenario library.
type Store struct {
	db *sql.DB
}

// ScenarioEntry describes a saved scenario without its cell data.
type ScenarioEntry struct {
	ID        string
	Name      string
	Width     int
	Height    int
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenarios (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name);
		CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios(created_at DESC);
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

// SaveScenario stores a snapshot of g under name and returns its entry.
// Saving an existing name adds a new revision; loads by name pick the newest.
func (s *Store) SaveScenario(name string, g *scenario.Grid) (ScenarioEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ScenarioEntry{}, fmt.Errorf("storage: scenario name must not be empty")
	}

	var buf bytes.Buffer
	if err := scenario.Export(&buf, g); err != nil {
		return ScenarioEntry{}, fmt.Errorf("storage: cannot encode scenario: %w", err)
	}

	entry := ScenarioEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Width:     g.Width(),
		Height:    g.Height(),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		"INSERT INTO scenarios (id, name, width, height, data, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Name, entry.Width, entry.Height, buf.Bytes(), entry.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return ScenarioEntry{}, fmt.Errorf("storage: cannot save scenario: %w", err)
	}

	return entry, nil
}

// LoadScenario returns the scenario with the given ID, or the newest
// revision saved under the given name.
func (s *Store) LoadScenario(nameOrID string) (ScenarioEntry, *scenario.Grid, error) {
	var e ScenarioEntry
	var data []byte
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, width, height, data, created_at
		 FROM scenarios
		 WHERE id = ? OR name = ?
		 ORDER BY (id = ?) DESC, created_at DESC, rowid DESC
		 LIMIT 1`,
		nameOrID, nameOrID, nameOrID,
	).Scan(&e.ID, &e.Name, &e.Width, &e.Height, &data, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ScenarioEntry{}, nil, fmt.Errorf("%w: %q", ErrNotFound, nameOrID)
	}
	if err != nil {
		return ScenarioEntry{}, nil, fmt.Errorf("storage: cannot query scenario: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)

	g, err := scenario.Load(bytes.NewReader(data), e.Width, e.Height)
	if err != nil {
		return ScenarioEntry{}, nil, fmt.Errorf("storage: scenario %s is corrupt: %w", e.ID, err)
	}

	return e, g, nil
}

// ListScenarios returns the newest scenarios first.
func (s *Store) ListScenarios(limit int) ([]ScenarioEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, width, height, created_at
		 FROM scenarios
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenarios: %w", err)
	}
	defer rows.Close()

	var entries []ScenarioEntry
	for rows.Next() {
		var e ScenarioEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Width, &e.Height, &createdAt); err != nil {
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

// DeleteScenario removes a scenario by ID.
func (s *Store) DeleteScenario(id string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete scenario: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}

// CountScenarios returns the number of saved scenarios.
func (s *Store) CountScenarios() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM scenarios").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count scenarios: %w", err)
	}
	return n, nil
}

const timeLayout = "2006-01-02 15:04:05.000"

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
