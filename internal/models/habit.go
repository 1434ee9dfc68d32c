package models

import (
	"strings"
	"time"
)

// Habit is a user-defined recurring action tracked for completion and
// streak. The category color is denormalized from the registry at
// create/edit time so the view layer never needs a registry lookup.
type Habit struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	CategoryColor string    `json:"categoryColor"`
	Streak        int       `json:"streak"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	OwnerID       string    `json:"ownerId"`
	Description   string    `json:"description,omitempty"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if h.Category == "" {
		return &ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	if h.Streak < 0 {
		return &ValidationError{Field: "streak", Reason: "cannot be negative"}
	}
	if h.OwnerID == "" {
		return &ValidationError{Field: "ownerId", Reason: "cannot be empty"}
	}
	return nil
}

// CompletionEntry records that a habit was completed on a given day.
// Entries are written when a habit is toggled complete and removed when
// it is toggled back within the same day, so the history mirrors the
// streak counter.
type CompletionEntry struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	OwnerID   string    `json:"ownerId"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"createdAt"`
}
