package models

import (
	"errors"
	"testing"
	"time"

	"github.com/Jyoti0525/habitflow/internal/constants"
)

func validHabit() Habit {
	return Habit{
		ID:        "h1",
		Name:      "Run",
		Category:  "Fitness",
		Streak:    0,
		CreatedAt: time.Now(),
		OwnerID:   "u1",
	}
}

func TestHabit_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Habit)
		wantErr bool
		field   string
	}{
		{"valid", func(h *Habit) {}, false, ""},
		{"empty name", func(h *Habit) { h.Name = "" }, true, "name"},
		{"whitespace name", func(h *Habit) { h.Name = "   " }, true, "name"},
		{"empty category", func(h *Habit) { h.Category = "" }, true, "category"},
		{"negative streak", func(h *Habit) { h.Streak = -1 }, true, "streak"},
		{"empty owner", func(h *Habit) { h.OwnerID = "" }, true, "ownerId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHabit()
			tt.mutate(&h)
			err := h.Validate()
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if vErr.Field != tt.field {
					t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUser_Validate(t *testing.T) {
	u := User{ID: "u1", Name: "Alex", Email: "alex@example.com"}
	if err := u.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	u.Email = "not-an-email"
	if err := u.Validate(); err == nil {
		t.Error("expected error for invalid email")
	}

	u = User{ID: "u1", Name: " ", Email: "alex@example.com"}
	if err := u.Validate(); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestNotification_Validate(t *testing.T) {
	n := Notification{ID: "n1", Message: "hello", Type: constants.NotificationInfo, Timestamp: time.Now()}
	if err := n.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	n.Type = "shout"
	if err := n.Validate(); err == nil {
		t.Error("expected error for unknown type")
	}

	n = Notification{ID: "n1", Type: constants.NotificationInfo}
	if err := n.Validate(); err == nil {
		t.Error("expected error for empty message")
	}
}
