package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunner_ApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE things (id TEXT PRIMARY KEY);`),
		},
		"002_add_name.sql": &fstest.MapFile{
			Data: []byte(`ALTER TABLE things ADD COLUMN name TEXT;`),
		},
	}

	runner := NewRunner(db, mfs)
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	var version int
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// Re-running applies nothing.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on re-run, got %d", applied)
	}
}

func TestRunner_InvalidFilenames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"no underscore", "001init.sql"},
		{"non-numeric version", "abc_init.sql"},
		{"zero version", "000_init.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openTestDB(t)
			mfs := fstest.MapFS{
				tt.file: &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			}
			if _, err := NewRunner(db, mfs).ApplyMigrations(nil); err == nil {
				t.Errorf("expected error for filename %s", tt.file)
			}
		})
	}
}

func TestRunner_DuplicateVersions(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_a.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
		"001_b.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
	}
	if _, err := NewRunner(db, mfs).ApplyMigrations(nil); err == nil {
		t.Error("expected error for duplicate versions")
	}
}

func TestRunner_FailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE things (id TEXT PRIMARY KEY);`),
		},
		"002_broken.sql": &fstest.MapFile{
			Data: []byte(`THIS IS NOT SQL;`),
		},
	}

	applied, err := NewRunner(db, mfs).ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before failure, got %d", applied)
	}

	// Version stays at the last successful migration.
	var version int
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version 1, got %d", version)
	}
}

func TestRunner_ValidateVersion(t *testing.T) {
	db := openTestDB(t)
	mfs := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE things (id TEXT PRIMARY KEY);`),
		},
	}

	runner := NewRunner(db, mfs)
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("unexpected error on fresh database: %v", err)
	}
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("unexpected error after migration: %v", err)
	}

	// A database from a newer build fails validation.
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for newer schema version")
	}
}
