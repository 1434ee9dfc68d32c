package postgres

import (
	"database/sql"
	"fmt"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func scanHabits(rows *sql.Rows) ([]models.Habit, error) {
	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Category, &h.CategoryColor,
			&h.Streak, &h.Completed, &h.CreatedAt, &h.Description); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *PostgresStore) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(
		`INSERT INTO habits (id, owner_id, name, category, category_color, streak, completed, created_at, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		habit.ID, habit.OwnerID, habit.Name, habit.Category, habit.CategoryColor,
		habit.Streak, habit.Completed, habit.CreatedAt, habit.Description,
	)
	if err != nil {
		return &models.StorageError{Op: "add habit", Err: err}
	}
	return nil
}

func (s *PostgresStore) GetHabit(ownerID, id string) (models.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, name, category, category_color, streak, completed, created_at, description
		 FROM habits WHERE owner_id = $1 AND id = $2`, ownerID, id)
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

func (s *PostgresStore) GetHabits(ownerID string) ([]models.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, owner_id, name, category, category_color, streak, completed, created_at, description
		 FROM habits WHERE owner_id = $1 ORDER BY position`, ownerID)
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

func (s *PostgresStore) UpdateHabit(habit models.Habit) error {
	res, err := s.db.Exec(
		`UPDATE habits SET name = $1, category = $2, category_color = $3, streak = $4, completed = $5, description = $6
		 WHERE owner_id = $7 AND id = $8`,
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

func (s *PostgresStore) DeleteHabit(ownerID, id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return &models.StorageError{Op: "delete habit", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: habit %s", models.ErrNotFound, id)
	}
	return nil
}
