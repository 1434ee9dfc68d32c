package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var createdAt string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt, &u.Seeded)
	if err != nil {
		return models.User{}, err
	}
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse user timestamp: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) AddUser(user models.User) error {
	_, err := s.db.Exec(
		`INSERT INTO users (id, name, email, password_hash, created_at, seeded) VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt.Format(time.RFC3339), user.Seeded,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.ErrDuplicateEmail
		}
		return &models.StorageError{Op: "add user", Err: err}
	}
	return nil
}

func (s *SQLiteStore) GetUser(id string) (models.User, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email, password_hash, created_at, seeded FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	return u, err
}

func (s *SQLiteStore) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email, password_hash, created_at, seeded FROM users WHERE email = ? COLLATE NOCASE`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: no user with email %s", models.ErrNotFound, email)
	}
	return u, err
}

func (s *SQLiteStore) UpdateUser(user models.User) error {
	res, err := s.db.Exec(
		`UPDATE users SET name = ?, email = ?, password_hash = ?, seeded = ? WHERE id = ?`,
		user.Name, user.Email, user.PasswordHash, user.Seeded, user.ID,
	)
	if err != nil {
		return &models.StorageError{Op: "update user", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, user.ID)
	}
	return nil
}

func (s *SQLiteStore) SaveSession(session models.Session) error {
	_, err := s.db.Exec(
		`INSERT INTO session (id, user_id, name, email) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, name = excluded.name, email = excluded.email`,
		session.UserID, session.Name, session.Email,
	)
	if err != nil {
		return &models.StorageError{Op: "save session", Err: err}
	}
	return nil
}

func (s *SQLiteStore) GetSession() (models.Session, error) {
	var sess models.Session
	err := s.db.QueryRow(`SELECT user_id, name, email FROM session WHERE id = 1`).
		Scan(&sess.UserID, &sess.Name, &sess.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, fmt.Errorf("%w: no active session", models.ErrNotFound)
	}
	if err != nil {
		return models.Session{}, &models.StorageError{Op: "get session", Err: err}
	}
	return sess, nil
}

func (s *SQLiteStore) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return &models.StorageError{Op: "clear session", Err: err}
	}
	return nil
}
