package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/habits"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	list, err := svc.List("", "")
	if err != nil {
		return err
	}

	now := time.Now()
	weekStart := now.AddDate(0, 0, -6)
	entries, err := ctx.Store.GetEntriesForRange(sess.UserID,
		weekStart.Format(constants.DateFormat), now.Format(constants.DateFormat))
	if err != nil {
		return err
	}

	fmt.Printf("Stats for %s\n\n", sess.Name)
	fmt.Printf("Habits:          %d\n", habits.TotalCount(list))
	fmt.Printf("Completed today: %d\n", habits.CompletedCount(list))
	fmt.Printf("Longest streak:  %s\n", FormatStreak(habits.LongestStreak(list)))
	fmt.Printf("Perfect days:    %d (last 7 days)\n", habits.PerfectDays(list, entries, now, 7))

	fmt.Println("\nLast 7 days:")
	weekly := habits.WeeklyCompletions(entries, now)
	for i, count := range weekly {
		day := now.AddDate(0, 0, i-6)
		bar := strings.Repeat("█", count)
		if bar == "" {
			bar = "·"
		}
		fmt.Printf("  %s  %s %d\n", day.Format("Mon"), bar, count)
	}
	return nil
}
