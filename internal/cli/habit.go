package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Jyoti0525/habitflow/internal/categories"
	"github.com/Jyoti0525/habitflow/internal/habits"
	"github.com/Jyoti0525/habitflow/internal/logger"
	"github.com/Jyoti0525/habitflow/internal/notifier"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's name, category, or description."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for today."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Category    string `help:"Category name."`
	Description string `help:"Optional description."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	if c.Name == "" || c.Category == "" {
		var options []huh.Option[string]
		for _, cat := range categories.All() {
			options = append(options, huh.NewOption(cat.Name, cat.Name))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&c.Name),
				huh.NewSelect[string]().Title("Category").Options(options...).Value(&c.Category),
				huh.NewInput().Title("Description (optional)").Value(&c.Description),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("habit form error: %w", err)
		}
	}

	habit, err := svc.Create(c.Name, c.Category, c.Description)
	if err != nil {
		return err
	}

	fmt.Printf("%s Added habit: %s (%s)\n", CategoryDot(habit.CategoryColor), habit.Name, habit.Category)
	return nil
}

type HabitListCmd struct {
	Category string `help:"Filter by category (default: All)." default:"All"`
	Search   string `help:"Case-insensitive name search."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	list, err := svc.List(c.Category, c.Search)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range list {
		status := "[ ]"
		if h.Completed {
			status = "[x]"
		}
		fmt.Printf("%s %s %-30s %-10s streak: %s\n",
			status, CategoryDot(h.CategoryColor), h.Name, h.Category, FormatStreak(h.Streak))
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}

	fmt.Printf("\nCompleted today: %d/%d\n", habits.CompletedCount(list), habits.TotalCount(list))
	return nil
}

type HabitEditCmd struct {
	ID          string  `arg:"" help:"Habit id."`
	Name        *string `help:"New name."`
	Category    *string `help:"New category."`
	Description *string `help:"New description."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	habit, err := svc.Edit(c.ID, habits.HabitUpdate{
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s Updated habit: %s (%s)\n", CategoryDot(habit.CategoryColor), habit.Name, habit.Category)
	return nil
}

type HabitDeleteCmd struct {
	ID    string `arg:"" help:"Habit id."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	habit, err := svc.Get(c.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete habit %q?", habit.Name)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := svc.Delete(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	habit, err := svc.ToggleComplete(c.ID)
	if err != nil {
		return err
	}

	if habit.Completed {
		fmt.Printf("Completed %q. Streak: %s\n", habit.Name, FormatStreak(habit.Streak))
		if habits.IsMilestone(habit.Streak) {
			// Desktop notification is best effort; the tray may not be running.
			msg := fmt.Sprintf("%d-day streak on %q!", habit.Streak, habit.Name)
			if err := notifier.New().Notify(msg); err != nil {
				logger.Debug("Desktop notification skipped", "error", err)
			}
		}
	} else {
		fmt.Printf("Unmarked %q. Streak: %s\n", habit.Name, FormatStreak(habit.Streak))
	}
	return nil
}
