package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func scanHabits(rows *sql.Rows) ([]models.Habit, error) {
	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Category, &h.CategoryColor,
			&h.Streak, &h.Completed, &createdAt, &h.Description); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse habit timestamp: %w", err)
		}
		h.CreatedAt = parsed
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(
		`INSERT INTO habits (id, owner_id, name, category, category_color, streak, completed, created_at, description, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
		   (SELECT COALESCE(MAX(position), 0) + 1 FROM habits WHERE owner_id = ?))`,
		habit.ID, habit.OwnerID, habit.Name, habit.Category, habit.CategoryColor,
		habit.Streak, habit.Completed, habit.CreatedAt.Format(time.RFC3339), habit.Description,
		habit.OwnerID,
	)
	if err != nil {
		return &models.StorageError{Op: "add habit", Err: err}
	}
	return nil
}

func (s *SQLiteStore) GetHabit(ownerID, id string) (models.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, name, category, category_color, streak, completed, created_at, description
		 FROM habits WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return models.Habit{}, &models.StorageError{Op: "get habit", Err: err}
	}
	defer rows.Close()

	habits, err := scanHabits(rows)
	if err != nil {
		return models.Habit{}, &models.StorageError{Op: "get habit", Err: err}
	}
	if len(habits) == 0 {
		return models.Habit{}, fmt.Errorf("%w: habit %s", models.ErrNotFound, id)
	}
	return habits[0], nil
}

func (s *SQLiteStore) GetHabits(ownerID string) ([]models.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, name, category, category_color, streak, completed, created_at, description
		 FROM habits WHERE owner_id = ? ORDER BY position`, ownerID)
	if err != nil {
		return nil, &models.StorageError{Op: "list habits", Err: err}
	}
	defer rows.Close()

	habits, err := scanHabits(rows)
	if err != nil {
		return nil, &models.StorageError{Op: "list habits", Err: err}
	}
	return habits, nil
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	res, err := s.db.Exec(
		`UPDATE habits SET name = ?, category = ?, category_color = ?, streak = ?, completed = ?, description = ?
		 WHERE owner_id = ? AND id = ?`,
		habit.Name, habit.Category, habit.CategoryColor, habit.Streak, habit.Completed, habit.Description,
		habit.OwnerID, habit.ID,
	)
	if err != nil {
		return &models.StorageError{Op: "update habit", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: habit %s", models.ErrNotFound, habit.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteHabit(ownerID, id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return &models.StorageError{Op: "delete habit", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: habit %s", models.ErrNotFound, id)
	}
	return nil
}
