// Package habits implements the habit collection for one owner: CRUD,
// completion toggling with streak adjustment, and the derived metrics
// the dashboard shows.
package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jyoti0525/habitflow/internal/categories"
	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/notifications"
	"github.com/Jyoti0525/habitflow/internal/storage"
)

// Service owns the habit collection for a single authenticated user.
// Every mutation persists before returning and emits its notification
// through the log.
type Service struct {
	store   storage.Provider
	log     *notifications.Log
	ownerID string
	now     func() time.Time
}

func NewService(store storage.Provider, log *notifications.Log, ownerID string) *Service {
	return &Service{
		store:   store,
		log:     log,
		ownerID: ownerID,
		now:     time.Now,
	}
}

// IsMilestone reports whether a streak value crosses a milestone
// threshold: 3, 7, 30, or any positive multiple of 10.
func IsMilestone(streak int) bool {
	for _, m := range constants.MilestoneStreaks {
		if streak == m {
			return true
		}
	}
	return streak > 0 && streak%10 == 0
}

func (s *Service) Create(name, category, description string) (models.Habit, error) {
	color, err := categories.ColorOf(category)
	if err != nil {
		return models.Habit{}, &models.ValidationError{Field: "category", Reason: "not registered", Err: err}
	}

	habit := models.Habit{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		Category:      category,
		CategoryColor: color,
		Streak:        0,
		Completed:     false,
		CreatedAt:     s.now(),
		OwnerID:       s.ownerID,
		Description:   strings.TrimSpace(description),
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}

	if err := s.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}
	if _, err := s.log.Append("New habit created.", constants.NotificationSuccess); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// HabitUpdate carries partial edits. Nil fields are left unchanged.
type HabitUpdate struct {
	Name        *string
	Category    *string
	Description *string
}

// Edit applies partial field updates. A category change re-derives the
// display color. Streak and completed are never touched here.
func (s *Service) Edit(id string, update HabitUpdate) (models.Habit, error) {
	habit, err := s.store.GetHabit(s.ownerID, id)
	if err != nil {
		return models.Habit{}, err
	}

	if update.Name != nil {
		habit.Name = strings.TrimSpace(*update.Name)
	}
	if update.Category != nil && *update.Category != habit.Category {
		color, err := categories.ColorOf(*update.Category)
		if err != nil {
			return models.Habit{}, &models.ValidationError{Field: "category", Reason: "not registered", Err: err}
		}
		habit.Category = *update.Category
		habit.CategoryColor = color
	}
	if update.Description != nil {
		habit.Description = strings.TrimSpace(*update.Description)
	}

	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}
	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Service) Delete(id string) error {
	habit, err := s.store.GetHabit(s.ownerID, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteHabit(s.ownerID, id); err != nil {
		return err
	}
	_, err = s.log.Append(fmt.Sprintf("Habit %q deleted.", habit.Name), constants.NotificationInfo)
	return err
}

// ToggleComplete flips the completion state. Completing increments the
// streak and records a completion entry for today; un-completing
// decrements (never below zero) and removes today's entry, undoing the
// toggle it reverses. Crossing a milestone on the way up emits exactly
// one success notification.
func (s *Service) ToggleComplete(id string) (models.Habit, error) {
	habit, err := s.store.GetHabit(s.ownerID, id)
	if err != nil {
		return models.Habit{}, err
	}

	today := s.now().Format(constants.DateFormat)
	if !habit.Completed {
		habit.Completed = true
		habit.Streak++

		if err := s.store.UpdateHabit(habit); err != nil {
			return models.Habit{}, err
		}
		entry := models.CompletionEntry{
			ID:        uuid.NewString(),
			HabitID:   habit.ID,
			OwnerID:   s.ownerID,
			Day:       today,
			CreatedAt: s.now(),
		}
		if err := s.store.AddEntry(entry); err != nil {
			return models.Habit{}, err
		}

		if IsMilestone(habit.Streak) {
			msg := fmt.Sprintf("%d-day streak on %q!", habit.Streak, habit.Name)
			if _, err := s.log.Append(msg, constants.NotificationSuccess); err != nil {
				return models.Habit{}, err
			}
		}
		return habit, nil
	}

	habit.Completed = false
	if habit.Streak > 0 {
		habit.Streak--
	}
	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, err
	}
	// The entry may be absent when the completion happened on an earlier
	// day, so a missing record is not an error here.
	if err := s.store.DeleteEntry(s.ownerID, habit.ID, today); err != nil && !isNotFound(err) {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Service) Get(id string) (models.Habit, error) {
	return s.store.GetHabit(s.ownerID, id)
}

// List returns habits in insertion order, optionally filtered by exact
// category and case-insensitive name substring. Category "All" or empty
// disables the category filter.
func (s *Service) List(filterCategory, searchText string) ([]models.Habit, error) {
	habits, err := s.store.GetHabits(s.ownerID)
	if err != nil {
		return nil, err
	}

	filterAll := filterCategory == "" || filterCategory == constants.CategoryAll
	search := strings.ToLower(strings.TrimSpace(searchText))

	var out []models.Habit
	for _, h := range habits {
		if !filterAll && h.Category != filterCategory {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(h.Name), search) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

// Seed creates the starter habits a fresh account begins with.
func (s *Service) Seed() error {
	starters := []struct {
		name     string
		category string
	}{
		{"Morning Meditation", "Wellness"},
		{"Drink 8 Glasses of Water", "Health"},
		{"Read for 20 Minutes", "Learning"},
	}

	for _, st := range starters {
		color, err := categories.ColorOf(st.category)
		if err != nil {
			return err
		}
		habit := models.Habit{
			ID:            uuid.NewString(),
			Name:          st.name,
			Category:      st.category,
			CategoryColor: color,
			CreatedAt:     s.now(),
			OwnerID:       s.ownerID,
		}
		if err := s.store.AddHabit(habit); err != nil {
			return err
		}
	}
	return nil
}
