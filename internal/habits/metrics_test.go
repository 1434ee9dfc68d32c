package habits

import (
	"testing"
	"time"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/models"
)

func TestLongestStreak(t *testing.T) {
	if got := LongestStreak(nil); got != 0 {
		t.Errorf("expected 0 for empty collection, got %d", got)
	}

	habits := []models.Habit{
		{ID: "a", Streak: 3},
		{ID: "b", Streak: 12},
		{ID: "c", Streak: 0},
	}
	if got := LongestStreak(habits); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
}

func TestCompletedAndTotalCount(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", Completed: true},
		{ID: "b", Completed: false},
		{ID: "c", Completed: true},
	}
	if got := CompletedCount(habits); got != 2 {
		t.Errorf("expected 2 completed, got %d", got)
	}
	if got := TotalCount(habits); got != 3 {
		t.Errorf("expected total 3, got %d", got)
	}
	if got := CompletedCount(nil); got != 0 {
		t.Errorf("expected 0 for empty collection, got %d", got)
	}
}

func TestPerfectDays(t *testing.T) {
	end := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	created := end.AddDate(0, 0, -30)
	habits := []models.Habit{
		{ID: "a", CreatedAt: created},
		{ID: "b", CreatedAt: created},
	}

	day := func(offset int) string {
		return end.AddDate(0, 0, offset).Format(constants.DateFormat)
	}

	entries := []models.CompletionEntry{
		// Both habits done on the last day, only one the day before.
		{ID: "1", HabitID: "a", Day: day(0)},
		{ID: "2", HabitID: "b", Day: day(0)},
		{ID: "3", HabitID: "a", Day: day(-1)},
		// Both done three days back.
		{ID: "4", HabitID: "a", Day: day(-3)},
		{ID: "5", HabitID: "b", Day: day(-3)},
	}

	if got := PerfectDays(habits, entries, end, 7); got != 2 {
		t.Errorf("expected 2 perfect days, got %d", got)
	}
	if got := PerfectDays(nil, entries, end, 7); got != 0 {
		t.Errorf("expected 0 for no habits, got %d", got)
	}
	if got := PerfectDays(habits, nil, end, 7); got != 0 {
		t.Errorf("expected 0 for no entries, got %d", got)
	}
}

func TestPerfectDays_IgnoresNotYetCreatedHabits(t *testing.T) {
	end := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{ID: "old", CreatedAt: end.AddDate(0, 0, -10)},
		{ID: "new", CreatedAt: end}, // created today
	}

	yesterday := end.AddDate(0, 0, -1).Format(constants.DateFormat)
	entries := []models.CompletionEntry{
		{ID: "1", HabitID: "old", Day: yesterday},
	}

	// Yesterday only the old habit existed, and it was completed.
	if got := PerfectDays(habits, entries, end.AddDate(0, 0, -1), 1); got != 1 {
		t.Errorf("expected 1 perfect day, got %d", got)
	}
}

func TestBucketDay(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      DayBucket
	}{
		{"no entries", 0, 3, BucketNone},
		{"empty collection", 0, 0, BucketNone},
		{"entries from deleted habits", 2, 0, BucketPartial},
		{"partial", 1, 3, BucketPartial},
		{"all complete", 3, 3, BucketAll},
		{"extra stale entries", 4, 3, BucketAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketDay(tt.completed, tt.total); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWeeklyCompletions(t *testing.T) {
	end := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return end.AddDate(0, 0, offset).Format(constants.DateFormat)
	}

	entries := []models.CompletionEntry{
		{ID: "1", Day: day(0)},
		{ID: "2", Day: day(0)},
		{ID: "3", Day: day(-6)},
		{ID: "4", Day: day(-7)}, // outside the window
	}

	got := WeeklyCompletions(entries, end)
	if got[6] != 2 {
		t.Errorf("expected 2 completions on the last day, got %d", got[6])
	}
	if got[0] != 1 {
		t.Errorf("expected 1 completion on the first day, got %d", got[0])
	}
	for i := 1; i < 6; i++ {
		if got[i] != 0 {
			t.Errorf("expected 0 completions at index %d, got %d", i, got[i])
		}
	}
}
