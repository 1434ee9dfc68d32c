package models

import (
	"time"

	"github.com/Jyoti0525/habitflow/internal/constants"
)

// Notification is a transient, readable event record shown to the user.
// The log holds at most constants.MaxNotifications entries, newest first.
type Notification struct {
	ID        string                     `json:"id"`
	Message   string                     `json:"message"`
	Type      constants.NotificationType `json:"type"`
	Read      bool                       `json:"read"`
	Timestamp time.Time                  `json:"timestamp"`
}

func (n *Notification) Validate() error {
	if n.Message == "" {
		return &ValidationError{Field: "message", Reason: "cannot be empty"}
	}
	switch n.Type {
	case constants.NotificationInfo, constants.NotificationSuccess, constants.NotificationWarning:
		return nil
	default:
		return &ValidationError{Field: "type", Reason: "must be info, success, or warning"}
	}
}
