package cli

import (
	"fmt"

	"github.com/Jyoti0525/habitflow/internal/categories"
	"github.com/Jyoti0525/habitflow/internal/suggestions"
)

type SuggestCmd struct {
	List SuggestListCmd `cmd:"" help:"Show curated habit suggestions." default:"1"`
	Add  SuggestAddCmd  `cmd:"" help:"Adopt a suggestion as a new habit."`
}

type SuggestListCmd struct{}

func (c *SuggestListCmd) Run(ctx *Context) error {
	for _, s := range suggestions.All() {
		color, err := categories.ColorOf(s.Category)
		if err != nil {
			return err
		}
		fmt.Printf("%s %-20s %-10s %s\n", CategoryDot(color), s.Name, s.Category, s.Description)
		fmt.Printf("    %s\n", s.Benefit)
	}
	fmt.Println("\nAdopt one with: habitflow suggest add <name>")
	return nil
}

type SuggestAddCmd struct {
	Name string `arg:"" help:"Suggestion name."`
}

func (c *SuggestAddCmd) Run(ctx *Context) error {
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}

	s, ok := suggestions.ByName(c.Name)
	if !ok {
		return fmt.Errorf("no suggestion named %q (see 'habitflow suggest list')", c.Name)
	}

	habit, err := svc.Create(s.Name, s.Category, s.Description)
	if err != nil {
		return err
	}

	fmt.Printf("%s Added habit: %s (%s)\n", CategoryDot(habit.CategoryColor), habit.Name, habit.Category)
	return nil
}
