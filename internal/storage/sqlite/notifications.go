package sqlite

import (
	"fmt"
	"time"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func (s *SQLiteStore) GetNotifications(ownerID string) ([]models.Notification, error) {
	rows, err := s.db.Query(
		`SELECT id, message, type, read, timestamp FROM notifications
		 WHERE owner_id = ? ORDER BY position`, ownerID)
	if err != nil {
		return nil, &models.StorageError{Op: "list notifications", Err: err}
	}
	defer rows.Close()

	var log []models.Notification
	for rows.Next() {
		var n models.Notification
		var timestamp string
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.Read, &timestamp); err != nil {
			return nil, &models.StorageError{Op: "list notifications", Err: err}
		}
		n.Timestamp, err = time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse notification timestamp: %w", err)
		}
		log = append(log, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "list notifications", Err: err}
	}
	return log, nil
}

// SaveNotifications replaces the whole log. Position preserves the
// newest-first order the caller maintains.
func (s *SQLiteStore) SaveNotifications(ownerID string, log []models.Notification) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &models.StorageError{Op: "save notifications", Err: err}
	}

	if _, err := tx.Exec(`DELETE FROM notifications WHERE owner_id = ?`, ownerID); err != nil {
		_ = tx.Rollback()
		return &models.StorageError{Op: "save notifications", Err: err}
	}
	for i, n := range log {
		_, err := tx.Exec(
			`INSERT INTO notifications (id, owner_id, message, type, read, timestamp, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, ownerID, n.Message, n.Type, n.Read, n.Timestamp.Format(time.RFC3339), i,
		)
		if err != nil {
			_ = tx.Rollback()
			return &models.StorageError{Op: "save notifications", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &models.StorageError{Op: "save notifications", Err: err}
	}
	return nil
}
