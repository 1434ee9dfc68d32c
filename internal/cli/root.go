package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/habits"
	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/notifications"
	"github.com/Jyoti0525/habitflow/internal/session"
	"github.com/Jyoti0525/habitflow/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Session *session.Manager
	Debug   bool
}

// RequireUser returns the active session or fails the command with a
// login hint.
func (c *Context) RequireUser() (models.Session, error) {
	sess, err := c.Session.Current()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w (run 'habitflow login' first)", models.ErrNotAuthenticated)
	}
	return sess, nil
}

// HabitService builds the habit service bound to the active session.
func (c *Context) HabitService() (*habits.Service, error) {
	sess, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	log := notifications.NewLog(c.Store, sess.UserID)
	return habits.NewService(c.Store, log, sess.UserID), nil
}

// NotificationLog builds the notification log bound to the active session.
func (c *Context) NotificationLog() (*notifications.Log, error) {
	sess, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return notifications.NewLog(c.Store, sess.UserID), nil
}

// CategoryDot renders a colored marker for a habit's category.
func CategoryDot(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// TypeBadge renders a notification type label in its signal color.
func TypeBadge(kind constants.NotificationType) string {
	var color string
	switch kind {
	case constants.NotificationSuccess:
		color = "#10B981"
	case constants.NotificationWarning:
		color = "#F59E0B"
	default:
		color = "#3B82F6"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(kind))
}

// FormatStreak renders a streak with its flame marker when nonzero.
func FormatStreak(streak int) string {
	if streak == 0 {
		return "0"
	}
	return fmt.Sprintf("%d 🔥", streak)
}
