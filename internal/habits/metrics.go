package habits

import (
	"errors"
	"time"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/models"
)

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// LongestStreak returns the maximum streak across the collection, or 0
// when it is empty.
func LongestStreak(habits []models.Habit) int {
	longest := 0
	for _, h := range habits {
		if h.Streak > longest {
			longest = h.Streak
		}
	}
	return longest
}

// CompletedCount counts habits completed in the current period.
func CompletedCount(habits []models.Habit) int {
	count := 0
	for _, h := range habits {
		if h.Completed {
			count++
		}
	}
	return count
}

// TotalCount returns the collection size.
func TotalCount(habits []models.Habit) int {
	return len(habits)
}

// PerfectDays counts the days in the window ending at end (inclusive,
// spanning days calendar days) on which every habit that existed by
// that day has a completion entry.
func PerfectDays(habits []models.Habit, entries []models.CompletionEntry, end time.Time, days int) int {
	if len(habits) == 0 || days <= 0 {
		return 0
	}

	completedOn := make(map[string]map[string]bool) // day -> habitID -> done
	for _, e := range entries {
		if completedOn[e.Day] == nil {
			completedOn[e.Day] = make(map[string]bool)
		}
		completedOn[e.Day][e.HabitID] = true
	}

	perfect := 0
	for i := 0; i < days; i++ {
		day := end.AddDate(0, 0, -i)
		key := day.Format(constants.DateFormat)

		existing := 0
		allDone := true
		for _, h := range habits {
			if h.CreatedAt.Format(constants.DateFormat) > key {
				continue
			}
			existing++
			if !completedOn[key][h.ID] {
				allDone = false
				break
			}
		}
		if existing > 0 && allDone {
			perfect++
		}
	}
	return perfect
}

// DayBucket classifies a calendar day by completion coverage.
type DayBucket int

const (
	BucketNone DayBucket = iota
	BucketPartial
	BucketAll
)

// BucketDay classifies a day by how many of the collection's habits
// have a completion entry on it. An empty collection never reaches
// BucketAll, even with stale entries from since-deleted habits.
func BucketDay(completed, total int) DayBucket {
	switch {
	case completed == 0:
		return BucketNone
	case total > 0 && completed >= total:
		return BucketAll
	default:
		return BucketPartial
	}
}

// WeeklyCompletions buckets completion entries into per-day counts for
// the 7 days ending at end. Index 0 is the oldest day.
func WeeklyCompletions(entries []models.CompletionEntry, end time.Time) [7]int {
	byDay := make(map[string]int)
	for _, e := range entries {
		byDay[e.Day]++
	}

	var out [7]int
	for i := 0; i < 7; i++ {
		day := end.AddDate(0, 0, i-6)
		out[i] = byDay[day.Format(constants.DateFormat)]
	}
	return out
}
