package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func scanEntries(rows *sql.Rows) ([]models.CompletionEntry, error) {
	var entries []models.CompletionEntry
	for rows.Next() {
		var e models.CompletionEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.HabitID, &e.OwnerID, &e.Day, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse entry timestamp: %w", err)
		}
		e.CreatedAt = parsed
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) AddEntry(entry models.CompletionEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (id, habit_id, owner_id, day, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.HabitID, entry.OwnerID, entry.Day, entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return &models.StorageError{Op: "add entry", Err: err}
	}
	return nil
}

func (s *SQLiteStore) DeleteEntry(ownerID, habitID, day string) error {
	res, err := s.db.Exec(
		`DELETE FROM entries WHERE owner_id = ? AND habit_id = ? AND day = ?`, ownerID, habitID, day)
	if err != nil {
		return &models.StorageError{Op: "delete entry", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: entry for habit %s on %s", models.ErrNotFound, habitID, day)
	}
	return nil
}

func (s *SQLiteStore) GetEntriesForDay(ownerID, day string) ([]models.CompletionEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, habit_id, owner_id, day, created_at FROM entries WHERE owner_id = ? AND day = ?`,
		ownerID, day)
	if err != nil {
		return nil, &models.StorageError{Op: "list entries", Err: err}
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, &models.StorageError{Op: "list entries", Err: err}
	}
	return entries, nil
}

func (s *SQLiteStore) GetEntriesForRange(ownerID, startDay, endDay string) ([]models.CompletionEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, habit_id, owner_id, day, created_at FROM entries
		 WHERE owner_id = ? AND day >= ? AND day <= ? ORDER BY day`,
		ownerID, startDay, endDay)
	if err != nil {
		return nil, &models.StorageError{Op: "list entries", Err: err}
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, &models.StorageError{Op: "list entries", Err: err}
	}
	return entries, nil
}
