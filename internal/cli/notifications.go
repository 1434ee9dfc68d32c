package cli

import (
	"fmt"
	"strings"

	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/notifications"
)

type NotificationsCmd struct {
	List    NotificationsListCmd    `cmd:"" help:"Show the notification log." default:"1"`
	Read    NotificationsReadCmd    `cmd:"" help:"Mark a notification as read."`
	ReadAll NotificationsReadAllCmd `cmd:"" help:"Mark every notification as read."`
	Clear   NotificationsClearCmd   `cmd:"" help:"Empty the notification log."`
}

type NotificationsListCmd struct {
	Unread bool `help:"Show unread notifications only."`
}

func (c *NotificationsListCmd) Run(ctx *Context) error {
	log, err := ctx.NotificationLog()
	if err != nil {
		return err
	}

	all, err := log.All()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	shown := 0
	for _, n := range all {
		if c.Unread && n.Read {
			continue
		}
		marker := "•"
		if n.Read {
			marker = " "
		}
		fmt.Printf("%s [%s] %s  %s  (%s)\n",
			marker, TypeBadge(n.Type), n.Timestamp.Format("Jan 02 15:04"), n.Message, n.ID[:8])
		shown++
	}
	if shown == 0 {
		fmt.Println("No unread notifications.")
		return nil
	}

	fmt.Printf("\nUnread: %d/%d\n", notifications.UnreadCount(all), len(all))
	return nil
}

type NotificationsReadCmd struct {
	ID string `arg:"" help:"Notification id (or unique prefix)."`
}

func (c *NotificationsReadCmd) Run(ctx *Context) error {
	log, err := ctx.NotificationLog()
	if err != nil {
		return err
	}

	// Accept an id prefix so the short form printed by list works.
	all, err := log.All()
	if err != nil {
		return err
	}
	id, err := expandNotificationID(all, c.ID)
	if err != nil {
		return err
	}

	if err := log.MarkRead(id); err != nil {
		return err
	}
	fmt.Println("Marked as read.")
	return nil
}

// expandNotificationID resolves the short id form printed by list to
// the full id. An ambiguous prefix is rejected rather than guessed;
// an unmatched one passes through for MarkRead to ignore.
func expandNotificationID(all []models.Notification, prefix string) (string, error) {
	if len(prefix) < 4 {
		return prefix, nil
	}

	full := prefix
	matches := 0
	for _, n := range all {
		if len(prefix) < len(n.ID) && strings.HasPrefix(n.ID, prefix) {
			full = n.ID
			matches++
		}
	}
	if matches > 1 {
		return "", fmt.Errorf("notification id %q matches %d notifications, use a longer prefix", prefix, matches)
	}
	return full, nil
}

type NotificationsReadAllCmd struct{}

func (c *NotificationsReadAllCmd) Run(ctx *Context) error {
	log, err := ctx.NotificationLog()
	if err != nil {
		return err
	}

	if err := log.MarkAllRead(); err != nil {
		return err
	}
	fmt.Println("All notifications marked as read.")
	return nil
}

type NotificationsClearCmd struct{}

func (c *NotificationsClearCmd) Run(ctx *Context) error {
	log, err := ctx.NotificationLog()
	if err != nil {
		return err
	}

	if err := log.Clear(); err != nil {
		return err
	}
	fmt.Println("Notification log cleared.")
	return nil
}
