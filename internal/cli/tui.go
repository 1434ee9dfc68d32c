package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jyoti0525/habitflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	svc, err := ctx.HabitService()
	if err != nil {
		return err
	}
	log, err := ctx.NotificationLog()
	if err != nil {
		return err
	}

	model, err := tui.NewModel(svc, log, sess)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
