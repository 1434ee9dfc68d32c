// Package postgres implements the storage provider on a PostgreSQL
// database for shared or remote setups. Database credentials come from
// the OS keyring or the environment, never from the command line.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/Jyoti0525/habitflow/internal/logger"
)

// ErrEmbeddedCredentials is returned when a connection string carries a
// password inline where one is not allowed, such as the command line.
var ErrEmbeddedCredentials = errors.New("connection string must not contain embedded credentials")

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    seeded BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (LOWER(email));

CREATE TABLE IF NOT EXISTS session (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    category_color TEXT NOT NULL,
    streak INTEGER NOT NULL DEFAULT 0 CHECK (streak >= 0),
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    position BIGSERIAL
);
CREATE INDEX IF NOT EXISTS idx_habits_owner ON habits (owner_id, position);

CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    habit_id TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    day TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (habit_id, day)
);
CREATE INDEX IF NOT EXISTS idx_entries_owner_day ON entries (owner_id, day);

CREATE TABLE IF NOT EXISTS notifications (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    message TEXT NOT NULL,
    type TEXT NOT NULL,
    read BOOLEAN NOT NULL DEFAULT FALSE,
    timestamp TIMESTAMPTZ NOT NULL,
    position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notifications_owner ON notifications (owner_id, position);
`

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// ValidateConnString rejects connection strings with an inline password.
// It applies to user-visible surfaces like the command-line flag; DSNs
// resolved from the keyring or environment may carry the password.
func ValidateConnString(connStr string) error {
	u, err := url.Parse(connStr)
	if err != nil {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return ErrEmbeddedCredentials
		}
	}
	return nil
}

// ensureSearchPath pins the search_path so unqualified table names
// always resolve to the application schema.
func ensureSearchPath(connStr string) (string, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return "", fmt.Errorf("invalid connection string: %w", err)
	}

	q := u.Query()
	if q.Get("search_path") == "" {
		q.Set("search_path", "public")
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	connStr, err := ensureSearchPath(s.connStr)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.Info("PostgreSQL schema ensured")
	return nil
}

// Load ensures the schema exists so a first run against a fresh
// database works without a separate init step.
func (s *PostgresStore) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *PostgresStore) GetConfigPath() string {
	u, err := url.Parse(s.connStr)
	if err != nil {
		return "postgres"
	}
	return fmt.Sprintf("postgres://%s%s", u.Host, strings.TrimSuffix(u.Path, "/"))
}
