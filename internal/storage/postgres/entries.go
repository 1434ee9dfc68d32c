package postgres

import (
	"database/sql"
	"fmt"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func scanEntries(rows *sql.Rows) ([]models.CompletionEntry, error) {
	var entries []models.CompletionEntry
	for rows.Next() {
		var e models.CompletionEntry
		if err := rows.Scan(&e.ID, &e.HabitID, &e.OwnerID, &e.Day, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) AddEntry(entry models.CompletionEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (id, habit_id, owner_id, day, created_at) VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.HabitID, entry.OwnerID, entry.Day, entry.CreatedAt,
	)
	if err != nil {
		return &models.StorageError{Op: "add entry", Err: err}
	}
	return nil
}

func (s *PostgresStore) DeleteEntry(ownerID, habitID, day string) error {
	res, err := s.db.Exec(
		`DELETE FROM entries WHERE owner_id = $1 AND habit_id = $2 AND day = $3`, ownerID, habitID, day)
	if err != nil {
		return &models.StorageError{Op: "delete entry", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: entry for habit %s on %s", models.ErrNotFound, habitID, day)
	}
	return nil
}

func (s *PostgresStore) GetEntriesForDay(ownerID, day string) ([]models.CompletionEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, habit_id, owner_id, day, created_at FROM entries WHERE owner_id = $1 AND day = $2`,
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

func (s *PostgresStore) GetEntriesForRange(ownerID, startDay, endDay string) ([]models.CompletionEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, habit_id, owner_id, day, created_at FROM entries
		 WHERE owner_id = $1 AND day >= $2 AND day <= $3 ORDER BY day`,
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
