package database

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	db, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndGetRecent(t *testing.T) {
	db := newTestDB(t)

	lookups := []struct {
		artist  string
		album   string
		outcome string
		count   int
	}{
		{"The Beatles", "Abbey Road", "found", 17},
		{"Radiohead", "OK Computer", "found", 12},
		{"Nobody", "Nothing", "not_found", 0},
	}
	for _, l := range lookups {
		if err := db.RecordLookup(l.artist, l.album, l.outcome, l.count); err != nil {
			t.Fatalf("RecordLookup() error = %v", err)
		}
	}

	records, err := db.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// Newest first
	if records[0].Album != "Nothing" || records[0].Outcome != "not_found" {
		t.Errorf("Unexpected newest record: %+v", records[0])
	}
	if records[2].Artist != "The Beatles" || records[2].TrackCount != 17 {
		t.Errorf("Unexpected oldest record: %+v", records[2])
	}
}

func TestGetRecentLimit(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 5; i++ {
		if err := db.RecordLookup("a", "b", "found", i); err != nil {
			t.Fatalf("RecordLookup() error = %v", err)
		}
	}

	records, err := db.GetRecent(2)
	if err != nil {
		t.Fatalf("GetRecent() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}

	// Non-positive limit falls back to the default
	records, err = db.GetRecent(0)
	if err != nil {
		t.Fatalf("GetRecent(0) error = %v", err)
	}
	if len(records) != 5 {
		t.Errorf("Expected 5 records with default limit, got %d", len(records))
	}
}

func TestGetRecentEmpty(t *testing.T) {
	db := newTestDB(t)

	records, err := db.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
