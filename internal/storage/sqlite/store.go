// Package sqlite implements the storage provider on an embedded SQLite
// database. Schema changes go through the migration runner.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Jyoti0525/habitflow/internal/logger"
	"github.com/Jyoti0525/habitflow/internal/migration"
	"github.com/Jyoti0525/habitflow/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(configPath string) *SQLiteStore {
	return &SQLiteStore{path: configPath}
}

func (s *SQLiteStore) migrationFS() (fs.FS, error) {
	return fs.Sub(migrations.FS, "sqlite")
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.migrate()
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitflow init' first")
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.migrate()
}

func (s *SQLiteStore) migrate() error {
	mfs, err := s.migrationFS()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, mfs)
	applied, err := runner.ApplyMigrations(func(msg string) {
		logger.Info(msg)
	})
	if err != nil {
		return err
	}
	if applied > 0 {
		logger.Info("Database migrations applied", "count", applied)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
