package postgres

import (
	"github.com/Jyoti0525/habitflow/internal/models"
)

func (s *PostgresStore) GetNotifications(ownerID string) ([]models.Notification, error) {
	rows, err := s.db.Query(
		`SELECT id, message, type, read, timestamp FROM notifications
		 WHERE owner_id = $1 ORDER BY position`, ownerID)
	if err != nil {
		return nil, &models.StorageError{Op: "list notifications", Err: err}
	}
	defer rows.Close()

	var log []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Type, &n.Read, &n.Timestamp); err != nil {
			return nil, &models.StorageError{Op: "list notifications", Err: err}
		}
		log = append(log, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "list notifications", Err: err}
	}
	return log, nil
}

func (s *PostgresStore) SaveNotifications(ownerID string, log []models.Notification) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &models.StorageError{Op: "save notifications", Err: err}
	}

	if _, err := tx.Exec(`DELETE FROM notifications WHERE owner_id = $1`, ownerID); err != nil {
		_ = tx.Rollback()
		return &models.StorageError{Op: "save notifications", Err: err}
	}
	for i, n := range log {
		_, err := tx.Exec(
			`INSERT INTO notifications (id, owner_id, message, type, read, timestamp, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			n.ID, ownerID, n.Message, n.Type, n.Read, n.Timestamp, i,
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
