package categories

import (
	"errors"
	"testing"

	"github.com/Jyoti0525/habitflow/internal/models"
)

func TestColorOf(t *testing.T) {
	tests := []struct {
		category string
		color    string
	}{
		{"Fitness", "#EC4899"},
		{"Wellness", "#8B5CF6"},
		{"Learning", "#3B82F6"},
		{"Health", "#10B981"},
		{"Hobby", "#F59E0B"},
		{"Work", "#6366F1"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			color, err := ColorOf(tt.category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if color != tt.color {
				t.Errorf("expected %s, got %s", tt.color, color)
			}
		})
	}
}

func TestColorOf_Unknown(t *testing.T) {
	_, err := ColorOf("Gaming")
	if !errors.Is(err, models.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}

	// Lookup is case-sensitive.
	if _, err := ColorOf("fitness"); err == nil {
		t.Error("expected error for lowercase name")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(all))
	}
	if all[0].Name != "Fitness" || all[5].Name != "Work" {
		t.Errorf("unexpected ordering: %v", all)
	}

	// Mutating the returned slice must not touch the registry.
	all[0].Color = "#000000"
	if color, _ := ColorOf("Fitness"); color != "#EC4899" {
		t.Error("registry was mutated through All()")
	}
}
