package tui

import (
	"fmt"
	"strings"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/notifications"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("HabitFlow · %s", m.user.Name)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case constants.StateConfirmDelete:
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Delete habit %q? (y/n)", m.deleteName)))
	case constants.StateNotifications:
		b.WriteString(m.renderNotifications())
	default:
		b.WriteString(m.habitList.View())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.status != "" {
		b.WriteString(readStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(readStyle.Render("tab: switch view · q: quit"))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	unread := notifications.UnreadCount(m.noteLog)
	noteTab := "Notifications"
	if unread > 0 {
		noteTab = fmt.Sprintf("Notifications (%d)", unread)
	}

	if m.state == constants.StateNotifications {
		return inactiveTabStyle.Render("Habits") + activeTabStyle.Render(noteTab)
	}
	return activeTabStyle.Render("Habits") + inactiveTabStyle.Render(noteTab)
}

func (m Model) renderNotifications() string {
	if len(m.noteLog) == 0 {
		return "\n  No notifications.\n"
	}

	var b strings.Builder
	for _, n := range m.noteLog {
		line := fmt.Sprintf("[%s] %s  %s", n.Type, n.Timestamp.Format("Jan 02 15:04"), n.Message)
		if n.Read {
			b.WriteString(readStyle.Render(line))
		} else {
			b.WriteString(unreadStyle.Render("• " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(readStyle.Render("r: mark all read · c: clear"))
	return b.String()
}
