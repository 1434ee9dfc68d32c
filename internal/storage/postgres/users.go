package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *PostgresStore) AddUser(user models.User) error {
	_, err := s.db.Exec(
		`INSERT INTO users (id, name, email, password_hash, created_at, seeded) VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.Seeded,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateEmail
		}
		return &models.StorageError{Op: "add user", Err: err}
	}
	return nil
}

func (s *PostgresStore) GetUser(id string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		`SELECT id, name, email, password_hash, created_at, seeded FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.Seeded)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	if err != nil {
		return models.User{}, &models.StorageError{Op: "get user", Err: err}
	}
	return u, nil
}

func (s *PostgresStore) GetUserByEmail(email string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		`SELECT id, name, email, password_hash, created_at, seeded FROM users WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.Seeded)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: no user with email %s", models.ErrNotFound, email)
	}
	if err != nil {
		return models.User{}, &models.StorageError{Op: "get user", Err: err}
	}
	return u, nil
}

func (s *PostgresStore) UpdateUser(user models.User) error {
	res, err := s.db.Exec(
		`UPDATE users SET name = $1, email = $2, password_hash = $3, seeded = $4 WHERE id = $5`,
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

func (s *PostgresStore) SaveSession(session models.Session) error {
	_, err := s.db.Exec(
		`INSERT INTO session (id, user_id, name, email) VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, name = EXCLUDED.name, email = EXCLUDED.email`,
		session.UserID, session.Name, session.Email,
	)
	if err != nil {
		return &models.StorageError{Op: "save session", Err: err}
	}
	return nil
}

func (s *PostgresStore) GetSession() (models.Session, error) {
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

func (s *PostgresStore) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return &models.StorageError{Op: "clear session", Err: err}
	}
	return nil
}
