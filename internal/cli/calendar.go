package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/habits"
)

type CalendarCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current month)."`
}

var (
	calendarNone    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	calendarPartial = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	calendarAll     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// Run renders a month grid where each day is bucketed by how much of
// the collection was completed: none, partial, or all.
func (c *CalendarCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	first := time.Now()
	if c.Month != "" {
		first, err = time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
	}
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	list, err := svc.List("", "")
	if err != nil {
		return err
	}
	entries, err := ctx.Store.GetEntriesForRange(sess.UserID,
		first.Format(constants.DateFormat), last.Format(constants.DateFormat))
	if err != nil {
		return err
	}

	countByDay := make(map[string]int)
	for _, e := range entries {
		countByDay[e.Day]++
	}

	fmt.Printf("%s\n\n", first.Format("January 2006"))
	fmt.Println("Mo Tu We Th Fr Sa Su")

	// Pad to the weekday of the 1st, with Monday as column zero.
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		fmt.Print("   ")
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		count := countByDay[day.Format(constants.DateFormat)]
		cell := fmt.Sprintf("%2d", day.Day())
		switch habits.BucketDay(count, len(list)) {
		case habits.BucketNone:
			cell = calendarNone.Render(cell)
		case habits.BucketAll:
			cell = calendarAll.Render(cell)
		default:
			cell = calendarPartial.Render(cell)
		}
		fmt.Printf("%s ", cell)

		if day.Weekday() == time.Sunday {
			fmt.Println()
		}
	}
	fmt.Println()

	fmt.Printf("\n%s none  %s partial  %s all habits done\n",
		calendarNone.Render("■"), calendarPartial.Render("■"), calendarAll.Render("■"))
	return nil
}
