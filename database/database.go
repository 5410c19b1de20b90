package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type Database struct {
	db *sql.DB
}

// LookupRecord is one completed lookup. Records are display data for the
// recent-lookups panel only; lookups are never answered from them.
type LookupRecord struct {
	ID         int64     `json:"id"`
	Artist     string    `json:"artist"`
	Album      string    `json:"album"`
	Outcome    string    `json:"outcome"`
	TrackCount int       `json:"track_count"`
	LookedUpAt time.Time `json:"looked_up_at"`
}

// New creates a new Database instance. dbPath defaults to DB_PATH env var or /app/data/linernotes.db.
func New() (*Database, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "/app/data/linernotes.db"
	}

	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	d := &Database{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Infof("Database initialized at %s", dbPath)
	return d, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS lookup_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			artist TEXT NOT NULL,
			album TEXT NOT NULL,
			outcome TEXT NOT NULL,
			track_count INTEGER NOT NULL DEFAULT 0,
			looked_up_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookup_history_looked_up_at ON lookup_history(looked_up_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

// RecordLookup inserts one completed lookup.
func (d *Database) RecordLookup(artist, album, outcome string, trackCount int) error {
	_, err := d.db.Exec(
		`INSERT INTO lookup_history (artist, album, outcome, track_count, looked_up_at)
		 VALUES (?, ?, ?, ?, ?)`,
		artist, album, outcome, trackCount, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// GetRecent returns the most recent lookups, newest first.
func (d *Database) GetRecent(limit int) ([]LookupRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := d.db.Query(
		`SELECT id, artist, album, outcome, track_count, looked_up_at
		 FROM lookup_history
		 ORDER BY looked_up_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup history: %w", err)
	}
	defer rows.Close()

	var records []LookupRecord
	for rows.Next() {
		var r LookupRecord
		if err := rows.Scan(&r.ID, &r.Artist, &r.Album, &r.Outcome, &r.TrackCount, &r.LookedUpAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
